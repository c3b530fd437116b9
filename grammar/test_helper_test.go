package grammar

// test_helper_test.go collects small literal grammars used across this
// package's tests, grounded on the concrete scenarios of spec.md §8.

// symbol ids shared by the LR(0) example grammar:
//
//	S -> B B
//	B -> a B | b
const (
	lr0A = iota
	lr0B
	lr0S
	lr0Bnt
	lr0Eps
	lr0End
	lr0Count
)

func lr0Names(id int) string {
	switch id {
	case lr0A:
		return "a"
	case lr0B:
		return "b"
	case lr0S:
		return "S"
	case lr0Bnt:
		return "B"
	case lr0Eps:
		return "ε"
	case lr0End:
		return "$"
	default:
		return ""
	}
}

func lr0IsTerminal(id int) bool {
	switch id {
	case lr0A, lr0B, lr0Eps, lr0End:
		return true
	default:
		return false
	}
}

func buildLR0ExampleGrammar() (*Grammar, error) {
	prods := []Production{
		{Left: lr0S, Right: []int{lr0Bnt, lr0Bnt}},
		{Left: lr0Bnt, Right: []int{lr0A, lr0Bnt}},
		{Left: lr0Bnt, Right: []int{lr0B}},
	}
	return NewGrammar(prods, lr0Count, lr0S, lr0Eps, lr0End, lr0Names, lr0IsTerminal)
}

// symbol ids for the classic arithmetic grammar:
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> ( E ) | id
const (
	arPlus = iota
	arStar
	arLParen
	arRParen
	arID
	arE
	arT
	arF
	arEps
	arEnd
	arCount
)

func arNames(id int) string {
	return [...]string{"+", "*", "(", ")", "id", "E", "T", "F", "ε", "$"}[id]
}

func arIsTerminal(id int) bool {
	return id <= arID || id == arEps || id == arEnd
}

func buildArithmeticGrammar() (*Grammar, error) {
	prods := []Production{
		{Left: arE, Right: []int{arE, arPlus, arT}},
		{Left: arE, Right: []int{arT}},
		{Left: arT, Right: []int{arT, arStar, arF}},
		{Left: arT, Right: []int{arF}},
		{Left: arF, Right: []int{arLParen, arE, arRParen}},
		{Left: arF, Right: []int{arID}},
	}
	return NewGrammar(prods, arCount, arE, arEps, arEnd, arNames, arIsTerminal)
}

// symbol ids for the classic LR(1)-only assignment grammar:
//
//	S -> L = R | R
//	L -> * R | id
//	R -> L
const (
	asnEq = iota
	asnStar
	asnID
	asnS
	asnL
	asnR
	asnEps
	asnEnd
	asnCount
)

func asnNames(id int) string {
	return [...]string{"=", "*", "id", "S", "L", "R", "ε", "$"}[id]
}

func asnIsTerminal(id int) bool {
	return id == asnEq || id == asnStar || id == asnID || id == asnEps || id == asnEnd
}

func buildAssignmentGrammar() (*Grammar, error) {
	prods := []Production{
		{Left: asnS, Right: []int{asnL, asnEq, asnR}},
		{Left: asnS, Right: []int{asnR}},
		{Left: asnL, Right: []int{asnStar, asnR}},
		{Left: asnL, Right: []int{asnID}},
		{Left: asnR, Right: []int{asnL}},
	}
	return NewGrammar(prods, asnCount, asnS, asnEps, asnEnd, asnNames, asnIsTerminal)
}
