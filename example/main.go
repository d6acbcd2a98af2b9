package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chainmap/chainmap"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	m := chainmap.New()
	log.Info().
		Int("capacity", m.Cap()).
		Float64("threshold", chainmap.DefaultLoadFactorThreshold).
		Msg("created map")

	// Insert some data
	for i := 0; i < 10; i++ {
		m.Set(fmt.Sprintf("key%d", i), i*100)
	}
	log.Info().Int("len", m.Len()).Float64("load_factor", m.LoadFactor()).Msg("inserted 10 key-value pairs")

	// Retrieve some values, including a few misses
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key%d", i)
		if v, ok := m.Get(key); ok {
			log.Info().Str("key", key).Interface("value", v).Msg("hit")
		} else {
			log.Info().Str("key", key).Msg("miss")
		}
	}

	// Update a value in place
	m.Set("key2", 999)
	if v, ok := m.Get("key2"); ok {
		log.Info().Str("key", "key2").Interface("value", v).Msg("updated")
	}

	// Remove a key
	m.Delete("key3")
	if _, ok := m.Get("key3"); !ok {
		log.Info().Str("key", "key3").Int("len", m.Len()).Msg("deleted")
	}

	// Push past the load factor threshold to trigger growth
	before := m.Cap()
	for i := 0; i < 100; i++ {
		m.Set(fmt.Sprintf("bulk%d", i), i)
	}
	log.Info().
		Int("old_capacity", before).
		Int("new_capacity", m.Cap()).
		Int("len", m.Len()).
		Float64("load_factor", m.LoadFactor()).
		Msg("grew past the threshold")
}
