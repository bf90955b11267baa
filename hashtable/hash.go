package hashtable

// HashFunc maps a key to a home slot for a table of the given size.
// The size is passed in because the probe tables grow through a size
// schedule and the hash must follow the current capacity.
type HashFunc func(key string, tableSize int) int

const hashBase = 31

// hashSeed is the initial multiplier state of the rolling hash.
const hashSeed = 31417

// PolynomialHash is the default table hash: a polynomial rolling hash
// with base 31, multiplier state reduced modulo (tableSize - 1) after
// every character, result modulo tableSize.
func PolynomialHash(key string, tableSize int) int {
	value, a := 0, hashSeed
	for i := 0; i < len(key); i++ {
		value = (int(key[i]) + a*value) % tableSize
		a = a * hashBase % (tableSize - 1)
	}
	return value
}
