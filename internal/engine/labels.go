package engine

// Label is an ordinal energy-efficiency rating of a dwelling.
type Label string

// The fixed ordered label enumeration, worst to best.
const (
	LabelG              Label = "G"
	LabelF              Label = "F"
	LabelE              Label = "E"
	LabelD              Label = "D"
	LabelC              Label = "C"
	LabelB              Label = "B"
	LabelA              Label = "A"
	LabelAPlus          Label = "A+"
	LabelAPlusPlus      Label = "A++"
	LabelAPlusPlusPlus  Label = "A+++"
	LabelAPlusPlusPlus4 Label = "A++++"
)

// labelOrder is the canonical ordering used for index arithmetic.
//
//nolint:gochecknoglobals // Fixed ordered enumeration, never mutated.
var labelOrder = []Label{
	LabelG, LabelF, LabelE, LabelD, LabelC, LabelB,
	LabelA, LabelAPlus, LabelAPlusPlus, LabelAPlusPlusPlus, LabelAPlusPlusPlus4,
}

// Index returns the position of l in the label ordering and whether l is a
// member of the enumeration. G is 0, A++++ is 10.
func (l Label) Index() (int, bool) {
	for i, v := range labelOrder {
		if v == l {
			return i, true
		}
	}
	return 0, false
}

// IsValid reports whether l is a member of the label enumeration.
func (l Label) IsValid() bool {
	_, ok := l.Index()
	return ok
}

// labelAt returns the label at index i, clamped to the enumeration bounds.
func labelAt(i int) Label {
	if i < 0 {
		return labelOrder[0]
	}
	if i >= len(labelOrder) {
		return labelOrder[len(labelOrder)-1]
	}
	return labelOrder[i]
}
