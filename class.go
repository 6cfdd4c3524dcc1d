// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

// class is a lexical character class, the column the state/action table
// (see table.go) is keyed on together with the current state. Every input byte
// maps to exactly one class.
type class int

// The ~31 lexical classes a byte may be mapped to. Order matters: it is the
// column order of the state transition table in table.go, and must match
// the reference mu_json classifier exactly.
const (
	cSpace class = iota // ' '
	cWhite               // tab, LF, CR
	cLCurb               // {
	cRCurb               // }
	cLSqrb               // [
	cRSqrb               // ]
	cColon               // :
	cComma               // ,
	cQuote               // "
	cBacks               // \
	cSlash               // /
	cPlus                // +
	cMinus               // -
	cPoint               // .
	cZero                // 0
	cDigit               // 1-9
	cLowA                // a
	cLowB                // b
	cLowC                // c
	cLowD                // d
	cLowE                // e
	cLowF                // f
	cLowL                // l
	cLowN                // n
	cLowR                // r
	cLowS                // s
	cLowT                // t
	cLowU                // u
	cABCDF               // uppercase A, B, C, D, F
	cE                   // uppercase E
	cETC                 // any other printable byte valid only in a string body

	numClasses
)

// cError is the sentinel returned by classify for a byte that can never
// start or continue any JSON token: a control character below 0x20 other
// than tab, LF, or CR.
const cError class = -1

// asciiClasses maps each of the 128 ASCII byte values to its class, ported
// cell-for-cell from the reference mu_json classifier's ascii_classes
// table. Rows of 8 bytes each, 0x00 through 0x7F.
var asciiClasses = [128]class{
	cError, cError, cError, cError, cError, cError, cError, cError,
	cError, cWhite, cWhite, cError, cError, cWhite, cError, cError,
	cError, cError, cError, cError, cError, cError, cError, cError,
	cError, cError, cError, cError, cError, cError, cError, cError,

	cSpace, cETC, cQuote, cETC, cETC, cETC, cETC, cETC,
	cETC, cETC, cETC, cPlus, cComma, cMinus, cPoint, cSlash,
	cZero, cDigit, cDigit, cDigit, cDigit, cDigit, cDigit, cDigit,
	cDigit, cDigit, cColon, cETC, cETC, cETC, cETC, cETC,

	cETC, cABCDF, cABCDF, cABCDF, cABCDF, cE, cABCDF, cETC,
	cETC, cETC, cETC, cETC, cETC, cETC, cETC, cETC,
	cETC, cETC, cETC, cETC, cETC, cETC, cETC, cETC,
	cETC, cETC, cETC, cLSqrb, cBacks, cRSqrb, cETC, cETC,

	cETC, cLowA, cLowB, cLowC, cLowD, cLowE, cLowF, cETC,
	cETC, cETC, cETC, cETC, cLowL, cETC, cLowN, cETC,
	cETC, cETC, cLowR, cLowS, cLowT, cLowU, cETC, cETC,
	cETC, cETC, cETC, cLCurb, cETC, cRCurb, cETC, cETC,
}

// classify returns the lexical class of ch, or cError if ch can never
// appear in valid JSON (a control character other than tab/LF/CR). Bytes
// at or above 0x80 are accepted as cETC, so that UTF-8 encoded text can
// pass through string bodies untouched; this parser performs no Unicode
// validation or decoding.
func classify(ch byte) class {
	if int(ch) < len(asciiClasses) {
		return asciiClasses[ch]
	}
	return cETC
}
