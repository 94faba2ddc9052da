// Package nnk is a small neural-network toolkit built around a Kohonen
// self-organizing map (SOM).
//
// A SOM places a fixed Width×Height lattice of neurons in input space and,
// by repeatedly presenting input vectors, pulls each neuron and its lattice
// neighbors toward the inputs it wins. After training, nearby neurons hold
// similar weight vectors: a topology-preserving, quantized summary of the
// data.
//
// Everything is organized under a few subpackages:
//
//	dataset/  — input vectors: whitespace-separated text reader & writer
//	grid/     — the neuron lattice: coordinates, row-major indexing, regions
//	matrix/   — row-major Dense storage backing the weight vectors
//	parallel/ — bounded fan-out used by the Compete phase
//	som/      — the trainer: Compete, Cooperate, Adapt, Decay, Print
//	cmd/som/  — command-line driver
//
// One training step for an input v:
//
//	Compete    d[j] = ‖v − w[j]‖²            for every cell j
//	Cooperate  c    = argmin d               (first in row-major order)
//	Adapt      w[j] += lr·h(j,c)·(v − w[j])  h = exp(−‖j−c‖²/2σ²)
//
// and after each epoch lr and σ shrink by 1/(1+decay).
//
//	go get github.com/cjdb01/nnk
package nnk
