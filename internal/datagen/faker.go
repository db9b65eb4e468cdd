//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides deterministic data generation utilities.
package datagen

import (
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker wraps a gofakeit instance. Generation is reproducible when the
// Faker is created with NewSeeded: every draw sequence for a given seed is
// identical across runs and platforms.
type Faker struct {
	faker *gofakeit.Faker
}

// New creates a new Faker with a time-based seed.
func New() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewSeeded creates a new Faker with a specific seed for reproducibility.
// The PCG source is built directly because gofakeit.New treats seed 0 as
// "pick a random seed", and day offset 0 must be as reproducible as every
// other seed.
func NewSeeded(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.NewFaker(rand.NewPCG(seed, seed), true),
	}
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Pick returns a random element from the given slice.
func Pick[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// CategorySeed derives the PRNG seed used to pick the saleyard and state
// for a (day offset, category) pair. The category contribution is an
// FNV-32a checksum so the seed is stable across runs, platforms, and Go
// releases.
func CategorySeed(dayOffset int, category string) uint64 {
	h := fnv.New32a()
	h.Write([]byte(category))
	return uint64(dayOffset) + uint64(h.Sum32())
}
