// Command test-query mints a local token for a subject and runs the
// accounts and transfers queries against a running server.
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <subject> [server-addr]", os.Args[0])
	}

	subject := os.Args[1]
	serverAddr := "http://localhost:8123"
	if len(os.Args) > 2 {
		serverAddr = os.Args[2]
	}

	payload, err := json.Marshal(map[string]string{"subject": subject})
	if err != nil {
		log.Fatalf("Failed to build token payload: %v", err)
	}
	token := base64.StdEncoding.EncodeToString(payload)
	fmt.Printf("Minted local token for subject %s\n\n", subject)

	queries := []string{
		"{ accounts { id iban ownerId currency balance } }",
		"{ transfers { id amount currency date creditor { id ownerId } debitor { id ownerId } } }",
	}

	for _, query := range queries {
		body, err := json.Marshal(map[string]string{"query": query})
		if err != nil {
			log.Fatalf("Failed to marshal query: %v", err)
		}

		req, err := http.NewRequest(http.MethodPost, serverAddr+"/graphql", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("Request failed: %v", err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			log.Fatalf("Failed to read response: %v", err)
		}

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Unexpected status %d: %s", resp.StatusCode, string(respBody))
		}

		fmt.Printf("Query: %s\n%s\n\n", query, string(respBody))
	}
}
