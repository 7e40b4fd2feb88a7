// Package classical implements the Caesar, Vigenère and Rail Fence ciphers.
//
// These ciphers have no security value and exist for teaching and for
// interoperability with legacy data. Every function treats its input as a
// sequence of Unicode code points, never bytes, and each pair is mutually
// inverse given the same parameter.
package classical
