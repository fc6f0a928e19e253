package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairyhunter13/warehouse-inventory-simulator/internal/obs"
)

var (
	seedTarget    string
	seedCount     int
	seedPurchases int
	seedProbe     bool
	seedRandSeed  int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drive a running instance with generated inventory traffic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed()
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedTarget, "target", "http://localhost:8080", "base URL of the service")
	seedCmd.Flags().IntVar(&seedCount, "products", 50, "number of products to add")
	seedCmd.Flags().IntVar(&seedPurchases, "purchases", 100, "number of purchase orders to issue")
	seedCmd.Flags().BoolVar(&seedProbe, "probe", false, "use the probing admission policy")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 1, "PRNG seed")
	rootCmd.AddCommand(seedCmd)
}

func seed() error {
	rng := rand.New(rand.NewSource(seedRandSeed))
	client := &http.Client{Timeout: 5 * time.Second}

	addPath := "/products"
	if seedProbe {
		addPath += "?policy=probe"
	}
	for i := 0; i < seedCount; i++ {
		body := map[string]any{
			"id":     i,
			"name":   fmt.Sprintf("product-%d", i),
			"stock":  rng.Intn(100) + 1,
			"day":    i / 10,
			"demand": rng.Intn(20),
		}
		if err := post(client, seedTarget+addPath, body); err != nil {
			return fmt.Errorf("add product %d: %w", i, err)
		}
	}
	for i := 0; i < seedPurchases; i++ {
		id := rng.Intn(seedCount)
		body := map[string]any{
			"day":    seedCount/10 + i/20,
			"amount": rng.Intn(10) + 1,
		}
		url := fmt.Sprintf("%s/products/%d/purchase", seedTarget, id)
		if err := post(client, url, body); err != nil {
			return fmt.Errorf("purchase product %d: %w", id, err)
		}
	}
	obs.Logger.Info("seed_complete",
		"target", seedTarget, "products", seedCount, "purchases", seedPurchases)
	return nil
}

func post(client *http.Client, url string, body map[string]any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
