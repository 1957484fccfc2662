package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"chordid/constants"
	"chordid/engine"
	"chordid/model"
	"chordid/pitch"
)

var serveEngine *engine.Engine

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves identification over http",
	Long:  `Serves identification over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeEngine builds the engine the handler uses. Split out so tests
// can hit HandleIdentify without binding a port.
func LoadServeEngine() {
	serveEngine = newEngine()
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "could not read request body", 400)
		return
	}

	var input model.IdentifyRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		http.Error(w, "could not unmarshal request body: "+err.Error(), 400)
		return
	}

	if len(input.Notes) == 0 {
		http.Error(w, "notes must not be empty", 400)
		return
	}
	for _, n := range input.Notes {
		if n < pitch.LowestPlayable || n > pitch.HighestPlayable {
			http.Error(w, fmt.Sprintf("note %d outside playable range", n), 400)
			return
		}
	}

	var res model.IdentifyResponse
	if result, ok := serveEngine.Identify(input.Notes); ok {
		res.Label = result.Label
		res.Matched = true
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	LoadServeEngine()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.ServeAddr, handler))
}
