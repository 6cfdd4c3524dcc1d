// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

// cell is an entry of the state/action table: either a pure state (a value
// less than numStates) or an action code (numStates or greater). The table
// is the program -- see parser.dispatch in parse.go for how an action cell
// is dispatched.
type cell int

// The ~31 pure states of the grammar. States before numStates simply
// transition from one state to another on each byte; states at or after
// numStates (the Ba..Pq constants below) are actions that perform a side
// effect -- allocating or sealing a token, adjusting depth -- before
// transitioning.
const (
	stGO cell = iota // start
	stOK              // value complete
	stOB              // just opened an object: expect a key or }
	stKE              // after an object comma: expect a key
	stCO              // after a key: expect :
	stVA              // expect a value
	stAR              // just opened an array
	stST              // inside a string
	stES              // just saw \ inside a string
	stU1              // first hex digit of \u
	stU2              // second hex digit of \u
	stU3              // third hex digit of \u
	stU4              // fourth hex digit of \u
	stMI              // just saw a leading -
	stZE              // leading zero
	stIN              // integer body
	stFR              // just saw ., first fraction digit required
	stFS              // subsequent fraction digits
	stE1              // just saw e/E
	stE2              // just saw the exponent sign
	stE3              // exponent digits
	stT1              // "t"
	stT2              // "tr"
	stT3              // "tru"
	stF1              // "f"
	stF2              // "fa"
	stF3              // "fal"
	stF4              // "fals"
	stN1              // "n"
	stN2              // "nu"
	stN3              // "nul"

	numStates
)

// Action codes, at or beyond numStates. Mixed-case names mirror the
// reference implementation's mnemonic style (Begin/Finish/Process).
const (
	actBa cell = numStates + iota // begin array
	actBd                         // begin digit 1-9
	actBf                         // begin false
	actBm                         // begin number with leading minus
	actBn                         // begin null
	actBo                         // begin object
	actBs                         // begin string
	actBt                         // begin true
	actBz                         // begin number with leading zero
	actFa                         // finish array
	actFo                         // finish object
	actPl                         // process colon
	actPm                         // process comma
	actPs                         // process trailing space
	actPq                         // process closing quote
)

// errCell marks a (state, class) pair with no valid transition.
const errCell cell = -1

// table is the (state x class) -> cell transition/action matrix, ported
// cell-for-cell from the reference mu_json implementation. Columns follow
// the class order declared in class.go; rows follow the state order
// declared above. Every cell of every row is assigned explicitly -- there
// are no gaps; an omitted cell would hold the zero value, stGO, not errCell.
//
// One cell is a deliberate, correctness-motivated deviation from the
// reference rather than a straight port: stES's cQuote entry. See the
// comment there.
var table = [numStates][numClasses]cell{
	stGO: {cSpace: stGO, cWhite: stGO, cLCurb: actBo, cRCurb: errCell, cLSqrb: actBa, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: actBs, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: actBm, cPoint: errCell, cZero: actBz, cDigit: actBd, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: actBf, cLowL: errCell, cLowN: actBn, cLowR: errCell, cLowS: errCell, cLowT: actBt, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stOK: {cSpace: actPs, cWhite: actPs, cLCurb: errCell, cRCurb: actFo, cLSqrb: errCell, cRSqrb: actFa, cColon: errCell, cComma: actPm, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stOB: {cSpace: stOB, cWhite: stOB, cLCurb: errCell, cRCurb: actFo, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: actBs, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stKE: {cSpace: stKE, cWhite: stKE, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: actBs, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stCO: {cSpace: stCO, cWhite: stCO, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: actPl, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stVA: {cSpace: stVA, cWhite: stVA, cLCurb: actBo, cRCurb: errCell, cLSqrb: actBa, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: actBs, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: actBm, cPoint: errCell, cZero: actBz, cDigit: actBd, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: actBf, cLowL: errCell, cLowN: actBn, cLowR: errCell, cLowS: errCell, cLowT: actBt, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stAR: {cSpace: stAR, cWhite: stAR, cLCurb: actBo, cRCurb: errCell, cLSqrb: actBa, cRSqrb: actFa, cColon: errCell, cComma: errCell, cQuote: actBs, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: actBm, cPoint: errCell, cZero: actBz, cDigit: actBd, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: actBf, cLowL: errCell, cLowN: actBn, cLowR: errCell, cLowS: errCell, cLowT: actBt, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stST: {cSpace: stST, cWhite: errCell, cLCurb: stST, cRCurb: stST, cLSqrb: stST, cRSqrb: stST, cColon: stST, cComma: stST, cQuote: actPq, cBacks: stES, cSlash: stST, cPlus: stST, cMinus: stST, cPoint: stST, cZero: stST, cDigit: stST, cLowA: stST, cLowB: stST, cLowC: stST, cLowD: stST, cLowE: stST, cLowF: stST, cLowL: stST, cLowN: stST, cLowR: stST, cLowS: stST, cLowT: stST, cLowU: stST, cABCDF: stST, cE: stST, cETC: stST},

	// stES's cQuote cell returns to stST, not actBs: \" is the escaped-quote
	// member of the string escape set, so the byte after the backslash must
	// resume the string body. The reference mu_json.c table instead maps
	// this cell to Bs (begin a new string token), which would split every
	// `\"` into two tokens; that is a latent bug in the reference, not
	// behavior to reproduce.
	stES: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: stST, cBacks: stST, cSlash: stST, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: stST, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: stST, cLowL: errCell, cLowN: stST, cLowR: stST, cLowS: errCell, cLowT: stST, cLowU: stU1, cABCDF: errCell, cE: errCell, cETC: errCell},

	stU1: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stU2, cDigit: stU2, cLowA: stU2, cLowB: stU2, cLowC: stU2, cLowD: stU2, cLowE: stU2, cLowF: stU2, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: stU2, cE: stU2, cETC: errCell},

	stU2: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stU3, cDigit: stU3, cLowA: stU3, cLowB: stU3, cLowC: stU3, cLowD: stU3, cLowE: stU3, cLowF: stU3, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: stU3, cE: stU3, cETC: errCell},

	stU3: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stU4, cDigit: stU4, cLowA: stU4, cLowB: stU4, cLowC: stU4, cLowD: stU4, cLowE: stU4, cLowF: stU4, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: stU4, cE: stU4, cETC: errCell},

	stU4: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stST, cDigit: stST, cLowA: stST, cLowB: stST, cLowC: stST, cLowD: stST, cLowE: stST, cLowF: stST, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: stST, cE: stST, cETC: errCell},

	stMI: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stZE, cDigit: stIN, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stZE: {cSpace: actPs, cWhite: actPs, cLCurb: errCell, cRCurb: actFo, cLSqrb: errCell, cRSqrb: actFa, cColon: errCell, cComma: actPm, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: stFR, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: stE1, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: stE1, cETC: errCell},

	stIN: {cSpace: actPs, cWhite: actPs, cLCurb: errCell, cRCurb: actFo, cLSqrb: errCell, cRSqrb: actFa, cColon: errCell, cComma: actPm, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: stFR, cZero: stIN, cDigit: stIN, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: stE1, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: stE1, cETC: errCell},

	stFR: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stFS, cDigit: stFS, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stFS: {cSpace: actPs, cWhite: actPs, cLCurb: errCell, cRCurb: actFo, cLSqrb: errCell, cRSqrb: actFa, cColon: errCell, cComma: actPm, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stFS, cDigit: stFS, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: stE1, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: stE1, cETC: errCell},

	stE1: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: stE2, cMinus: stE2, cPoint: errCell, cZero: stE3, cDigit: stE3, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stE2: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stE3, cDigit: stE3, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stE3: {cSpace: actPs, cWhite: actPs, cLCurb: errCell, cRCurb: actFo, cLSqrb: errCell, cRSqrb: actFa, cColon: errCell, cComma: actPm, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: stE3, cDigit: stE3, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stT1: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: stT2, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stT2: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: stT3, cABCDF: errCell, cE: errCell, cETC: errCell},

	stT3: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: stOK, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stF1: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: stF2, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stF2: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: stF3, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stF3: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: stF4, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stF4: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: stOK, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stN1: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: errCell, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: stN2, cABCDF: errCell, cE: errCell, cETC: errCell},

	stN2: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: stN3, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},

	stN3: {cSpace: errCell, cWhite: errCell, cLCurb: errCell, cRCurb: errCell, cLSqrb: errCell, cRSqrb: errCell, cColon: errCell, cComma: errCell, cQuote: errCell, cBacks: errCell, cSlash: errCell, cPlus: errCell, cMinus: errCell, cPoint: errCell, cZero: errCell, cDigit: errCell, cLowA: errCell, cLowB: errCell, cLowC: errCell, cLowD: errCell, cLowE: errCell, cLowF: errCell, cLowL: stOK, cLowN: errCell, cLowR: errCell, cLowS: errCell, cLowT: errCell, cLowU: errCell, cABCDF: errCell, cE: errCell, cETC: errCell},
}

// lookup returns the cell for (s, c), or errCell if the pair is not
// tabulated (which is itself a format error).
func lookup(s cell, c class) cell {
	if s < 0 || int(s) >= int(numStates) || c < 0 || int(c) >= int(numClasses) {
		return errCell
	}
	return table[s][c]
}
