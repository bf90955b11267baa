package hashtable

// DefaultTableSizes is the shared ascending capacity schedule. Growth
// walks this list one entry at a time; the last entry is the hard
// capacity limit. Every size is prime, which keeps the rolling hash's
// modulo (size - 1) multiplier well distributed.
var DefaultTableSizes = []int{
	5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289,
	24593, 49157, 98317, 196613, 393241, 786433, 1572869,
}
