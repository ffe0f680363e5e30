// Package tracker implements Trackers, which cache data generated
// during a learning run and save it to disk afterwards
package tracker

import (
	"encoding/gob"
	"log"
	"os"
)

// Tracker keeps track of learning-run data and saves the data after
// the run has finished
type Tracker interface {
	Track(value float64)
	Save()
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64

	err = dec.Decode(&data)
	if err != nil {
		log.Fatalf("could not decode data: %v", err)
	}

	return data
}

// save gob-encodes data to filename
func save(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create data file: %v", err)
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(data); err != nil {
		log.Fatalf("could not encode data: %v", err)
	}
}
