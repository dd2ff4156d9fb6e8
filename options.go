package svgpath

// Option configures path data parsing.
//
// Example:
//
//	// Reject "L10 -5": only digits continue an argument list
//	p, err := svgpath.ParsePath(d, svgpath.WithDigitContinuation())
type Option func(*parseOptions)

type parseOptions struct {
	// continues reports whether a token starting with c carries more
	// arguments for the current command.
	continues func(c byte) bool
}

func defaultOptions() parseOptions {
	return parseOptions{continues: isNumberStart}
}

func newOptions(opts []Option) parseOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDigitContinuation restricts implicit command repetition to tokens
// starting with an ASCII digit. A following argument with a leading sign
// or decimal point is then read as a token without a command and rejected
// with ErrUnsupportedCommand.
func WithDigitContinuation() Option {
	return func(o *parseOptions) {
		o.continues = isDigit
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isNumberStart(c byte) bool {
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}
