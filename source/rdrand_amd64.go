//go:build amd64

package source

import "golang.org/x/sys/cpu"

func hasRDRAND() bool { return cpu.X86.HasRDRAND }
func hasRDSEED() bool { return cpu.X86.HasRDSEED }

// Implemented in rdrand_amd64.s. ok mirrors the instruction's carry flag.
//
//go:noescape
func rdrand64() (val uint64, ok bool)

//go:noescape
func rdseed64() (val uint64, ok bool)
