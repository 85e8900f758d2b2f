//go:build !amd64

package source

func hasRDRAND() bool { return false }
func hasRDSEED() bool { return false }

func rdrand64() (uint64, bool) { return 0, false }
func rdseed64() (uint64, bool) { return 0, false }
