package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/basedalex/yadro-kata/pkg/config"
	log "github.com/sirupsen/logrus"
)

type HTTPResponse[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error"`
}

func call[T any](req *http.Request) (T, error) {
	var out HTTPResponse[T]

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return out.Data, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return out.Data, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out.Data, err
	}
	if out.Error != "" {
		return out.Data, fmt.Errorf("%s: %s", res.Status, out.Error)
	}

	return out.Data, nil
}

func main() {
	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Fatal(err)
	}
	base := fmt.Sprintf("http://localhost:%s", cfg.SrvPort)

	jsonBody, err := json.Marshal(map[string]string{
		"login":    cfg.AdminLogin,
		"password": cfg.AdminPassword,
	})
	if err != nil {
		log.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, base+"/login", bytes.NewReader(jsonBody))
	if err != nil {
		log.Fatal(err)
	}
	login, err := call[map[string]string](req)
	if err != nil {
		log.Fatal(err)
	}
	token := login["token"]
	log.Println("logged in")

	req, err = http.NewRequest(http.MethodPost, base+"/reload", nil)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Add("token", token)
	reloaded, err := call[map[string]int](req)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("dictionary words:", reloaded["words"])

	for _, word := range []string{"mengalahkan", "bukunya", "berayun", "berkelas"} {
		req, err = http.NewRequest(http.MethodGet, base+"/stem?word="+url.QueryEscape(word), nil)
		if err != nil {
			log.Fatal(err)
		}
		stem, err := call[map[string]any](req)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%s -> %v (invalid affix pair: %v)", word, stem["stem"], stem["invalid_affix_pair"])
	}
}
