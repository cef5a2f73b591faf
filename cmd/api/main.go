package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/cart"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/catalog"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/config"
	"github.com/MrSaltyFish/Grocery-Price-Comparison/internal/httpx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// Data source & cart sessions (all in-process)
	cat := catalog.NewMemory()
	sessions := cart.NewStore(catalog.SampleCartItems())

	// Router & handlers
	router := httpx.NewRouter()
	ch := &httpx.CompareHandler{
		Products: cat,
		Stores:   cat,
		Deals:    cat,
		Plans:    cat,
	}
	ch.Register(router)
	carts := &httpx.CartHandler{Sessions: sessions, Orders: cat}
	carts.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("%s listening at %s", cfg.ServiceName, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
