// mockbackend serves an in-memory storefront API for local development:
//
//	go run ./cmd/tools/mockbackend -addr :3333
//	BACKEND_BASE_URL=http://localhost:3333 go run ./cmd/web
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend/backendtest"
)

func main() {
	addr := flag.String("addr", ":3333", "Listen address")
	email := flag.String("email", "admin@example.com", "Accepted login e-mail")
	password := flag.String("password", "secret", "Accepted login password")
	seed := flag.Bool("seed", true, "Start with a few demo products")
	failList := flag.Bool("fail-list", false, "Answer GET /products with 500")
	failUpload := flag.Bool("fail-upload", false, "Answer POST /products/upload with 500")
	flag.Parse()

	fake := backendtest.New()
	fake.Email = *email
	fake.Password = *password
	fake.SetFailures(*failList, *failUpload, false)
	if *seed {
		fake.Seed(
			backend.Product{ID: "1", Title: "Caneca de cerâmica", Description: "300ml, vai ao micro-ondas", Category: "Casa", Price: 39.9, Status: "active"},
			backend.Product{ID: "2", Title: "Camiseta básica", Description: "Algodão, tamanho M", Category: "Vestuário", Price: 59, Status: "sold"},
		)
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           fake.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("mock backend on %s (login %s / %s)", *addr, *email, *password)
	log.Fatal(server.ListenAndServe())
}
