package entity

// SanitizedPhoto is one successful pipeline output ready to be archived.
type SanitizedPhoto struct {
	Index    int
	Filename string
	Data     []byte
	Width    int
	Height   int
	Quality  int
	Device   string
}

func NewSanitizedPhoto(index int, filename string, data []byte, width, height, quality int, device string) *SanitizedPhoto {
	return &SanitizedPhoto{
		Index:    index,
		Filename: filename,
		Data:     data,
		Width:    width,
		Height:   height,
		Quality:  quality,
		Device:   device,
	}
}
