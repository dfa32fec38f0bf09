package flatgrid

// HAlign controls horizontal placement of a cell's content within its column.
// The zero value HAlignNone means unset; unset cells render as [HAlignLeft].
type HAlign uint8

const (
	HAlignNone HAlign = iota
	HAlignLeft
	HAlignRight
	HAlignCenter
)

// String returns the lookup name of the alignment, or "" when unset.
func (a HAlign) String() string {
	switch a {
	case HAlignLeft:
		return "left"
	case HAlignRight:
		return "right"
	case HAlignCenter:
		return "center"
	default:
		return ""
	}
}

// VAlign controls vertical placement of a cell's content within its row.
// The zero value VAlignNone means unset; unset cells render as [VAlignTop].
type VAlign uint8

const (
	VAlignNone VAlign = iota
	VAlignTop
	VAlignBottom
	VAlignMiddle
)

// String returns the lookup name of the alignment, or "" when unset.
func (a VAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	case VAlignMiddle:
		return "middle"
	default:
		return ""
	}
}

// ParseHAlign maps a lookup name ("left", "right", "center") to a horizontal
// alignment. Unrecognized names report ok == false. Names are lowercase.
func ParseHAlign(s string) (HAlign, bool) {
	switch s {
	case "left":
		return HAlignLeft, true
	case "right":
		return HAlignRight, true
	case "center":
		return HAlignCenter, true
	}
	return HAlignNone, false
}

// ParseVAlign maps a lookup name ("top", "bottom", "middle") to a vertical
// alignment. Unrecognized names report ok == false. Names are lowercase.
func ParseVAlign(s string) (VAlign, bool) {
	switch s {
	case "top":
		return VAlignTop, true
	case "bottom":
		return VAlignBottom, true
	case "middle":
		return VAlignMiddle, true
	}
	return VAlignNone, false
}
