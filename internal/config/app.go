package config

import (
	"os"
	"strconv"
)

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

// SolveWorkers caps the parallel solver; 0 means one worker per CPU.
func SolveWorkers() int {
	workers, ok := os.LookupEnv("SOLVE_WORKERS")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(workers)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
