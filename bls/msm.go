package bls

import (
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
)

// multiExpConfig picks the NbTasks worker count gnark-crypto's MSM uses
// to split work across goroutines. This is the only place the curve
// library's own internal concurrency is enabled; the higher-level
// internal/parallel façade governs everything above this layer.
func multiExpConfig() ecc.MultiExpConfig {
	return ecc.MultiExpConfig{NbTasks: runtime.GOMAXPROCS(0)}
}
