// Package pcset models pitch-class sets of the twelve-tone equal-tempered
// system and the canonical analyses of atonal set theory: normal order,
// prime form and the interval-class vector.
//
// Every integer handed to this package is reduced modulo 12, so out of
// range values are never an error:
//
//	a := pcset.New(10, 4, 9, 6)
//	a.PrimeForm()           // [0 1 4 6]
//	a.IntervalClassVector() // <111111>
package pcset
