package wheel

// Style defines how wheels are drawn. Per-slot text colors come from the
// wheel's own Config; Style covers everything around them.
type Style struct {
	BackgroundColor uint32
	BorderColor     uint32 // 0 = no border
	BandColor       uint32 // selection band behind the center slot
	DividerColor    uint32 // ":" between time picker columns

	FontScale   float32 // glyph cell multiplier (1 = 7x13 px)
	ColumnGap   float32
	MinScale    float32 // slots flatter than this are skipped
	BorderWidth float32
}

// DefaultStyle mirrors a plain light picker: black selected text on white,
// gray for the rest.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: ColorWhite,
		BandColor:       RGBA(0, 0, 0, 20),
		DividerColor:    ColorBlack,
		FontScale:       1,
		ColumnGap:       10,
		MinScale:        0.05,
	}
}

// GTAStyle returns the dark style with cyan accents.
func GTAStyle() Style {
	return Style{
		BackgroundColor: RGBA(0, 0, 0, 220),
		BorderColor:     RGBA(0, 150, 200, 255),
		BandColor:       RGBA(0, 120, 180, 90),
		DividerColor:    RGBA(255, 200, 0, 255), // GTA yellow
		FontScale:       2,
		ColumnGap:       12,
		MinScale:        0.05,
		BorderWidth:     1,
	}
}

// GTAColors returns the selected/disabled slot colors matching GTAStyle,
// for use with WithColors.
func GTAColors() (selected, disabled uint32) {
	return ColorWhite, RGBA(128, 128, 128, 255)
}
