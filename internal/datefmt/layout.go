package datefmt

// Layout identifies which accepted input shape a date was written in
type Layout int

const (
	LayoutUnknown Layout = iota
	LayoutYMD
	LayoutMDY
	LayoutMonthName
	LayoutMonthAbbr
)

func (l Layout) String() string {
	switch l {
	case LayoutYMD:
		return "Y-M-D"
	case LayoutMDY:
		return "M/D/Y"
	case LayoutMonthName:
		return "MONTH DAY, YEAR"
	case LayoutMonthAbbr:
		return "MON DAY, YEAR"
	}
	return "unknown"
}

type delimAt struct {
	pos int
	d   byte
}

// shape describes one layout by token count and delimiter placement.
// Every position not listed in delims must hold a field.
type shape struct {
	layout           Layout
	tokens           int
	delims           []delimAt
	year, month, day int
}

// Order does not matter: no two shapes can match the same token stream.
var shapes = []shape{
	{
		layout: LayoutMonthName,
		tokens: 4,
		delims: []delimAt{{2, ','}},
		month:  0,
		day:    1,
		year:   3,
	},
	{
		layout: LayoutYMD,
		tokens: 5,
		delims: []delimAt{{1, '-'}, {3, '-'}},
		year:   0,
		month:  2,
		day:    4,
	},
	{
		layout: LayoutMDY,
		tokens: 5,
		delims: []delimAt{{1, '/'}, {3, '/'}},
		month:  0,
		day:    2,
		year:   4,
	},
}

func (s shape) match(tokens []Token) bool {
	if len(tokens) != s.tokens {
		return false
	}

	want := make([]byte, len(tokens))
	for _, d := range s.delims {
		want[d.pos] = d.d
	}
	for i, tok := range tokens {
		if want[i] == 0 {
			if tok.Kind != TokenField {
				return false
			}
			continue
		}
		if !tok.IsDelim(want[i]) {
			return false
		}
	}
	return true
}

// fields holds the raw year, month and day strings picked out by a shape
type fields struct {
	layout           Layout
	year, month, day string
}

// dispatch matches the token stream against the known shapes
func dispatch(tokens []Token) (fields, bool) {
	for _, s := range shapes {
		if !s.match(tokens) {
			continue
		}
		f := fields{
			layout: s.layout,
			year:   tokens[s.year].Text,
			month:  tokens[s.month].Text,
			day:    tokens[s.day].Text,
		}
		if f.layout == LayoutMonthName && len(f.month) == 3 {
			f.layout = LayoutMonthAbbr
		}
		return f, true
	}
	return fields{}, false
}
