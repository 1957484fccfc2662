package db

import (
	"os"
	"strconv"

	"chordid/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// BatchGetItem caps at 100 but metadata rows are chunky, stay well under
const MaxBatchSize = 10

func getEndpoint() string {
	if v := os.Getenv("METADATA_ENDPOINT"); v != "" {
		return v
	}
	return "http://localhost:8000"
}

// GetMidiMetadatas looks up stored metadata for up to MaxBatchSize midi
// filenames. Files without a row are simply absent from the result.
func GetMidiMetadatas(table string, filenames []string) map[string]model.MidiMetadata {
	if len(filenames) > MaxBatchSize {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]model.MidiMetadata)

	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	endpoint := getEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[table] {
		var s model.MidiMetadata
		if attr, ok := v["Year"]; ok && attr.N != nil {
			year, _ := strconv.ParseUint(*attr.N, 10, 32)
			s.Year = uint(year)
		}
		if attr, ok := v["Artist"]; ok && attr.S != nil {
			s.Artist = *attr.S
		}
		if attr, ok := v["Release"]; ok && attr.S != nil {
			s.Release = *attr.S
		}
		if attr, ok := v["Title"]; ok && attr.S != nil {
			s.Title = *attr.S
		}
		res[*v["PK"].S] = s
	}

	return res
}
