package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadExpression is returned for postfix expressions that cannot be
// evaluated.
var ErrBadExpression = errors.New("bad postfix expression")

// EvalPostfix evaluates a whitespace-separated postfix arithmetic
// expression over float64 with the operators + - * /.
func EvalPostfix(expr string) (float64, error) {
	var stack []float64

	for _, tok := range strings.Fields(expr) {
		switch tok {
		case "+", "-", "*", "/":
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: operator %q lacks operands", ErrBadExpression, tok)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			var res float64
			switch tok {
			case "+":
				res = a + b
			case "-":
				res = a - b
			case "*":
				res = a * b
			case "/":
				res = a / b
			}
			stack = append(stack, res)

		default:
			n, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: token %q", ErrBadExpression, tok)
			}
			stack = append(stack, n)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrBadExpression, len(stack))
	}
	return stack[0], nil
}
