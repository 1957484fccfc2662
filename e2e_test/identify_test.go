//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"chordid/cmd"
	"chordid/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	cmd.LoadServeEngine()

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createIdentifyReqBody(notes model.Notes) io.Reader {
	body := model.IdentifyRequestBody{Notes: notes}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func identify(t *testing.T, notes model.Notes) (int, model.IdentifyResponse) {
	req := httptest.NewRequest(http.MethodPost, "/identify", createIdentifyReqBody(notes))
	w := httptest.NewRecorder()
	cmd.HandleIdentify(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	var res model.IdentifyResponse
	if resp.StatusCode == 200 {
		err := json.Unmarshal(respBody, &res)
		if err != nil {
			panic(err.Error())
		}
	}
	return resp.StatusCode, res
}

func TestMinorSeventhE2E(t *testing.T) {
	status, res := identify(t, model.Notes{45, 60, 64, 67})

	assert := assert.New(t)
	assert.Equal(status, 200)
	assert.Equal(res, model.IdentifyResponse{Label: "Am7", Matched: true})
}

func TestSlashChordE2E(t *testing.T) {
	status, res := identify(t, model.Notes{46, 60, 64, 67})

	assert := assert.New(t)
	assert.Equal(status, 200)
	assert.Equal(res, model.IdentifyResponse{Label: "C/Bb", Matched: true})
}

func TestNoMatchE2E(t *testing.T) {
	status, res := identify(t, model.Notes{60, 62})

	assert := assert.New(t)
	assert.Equal(status, 200)
	assert.Equal(res, model.IdentifyResponse{Label: "", Matched: false})
}

func TestRejectsOutOfRangeE2E(t *testing.T) {
	status, _ := identify(t, model.Notes{10, 60, 64})

	assert := assert.New(t)
	assert.Equal(status, 400)
}
