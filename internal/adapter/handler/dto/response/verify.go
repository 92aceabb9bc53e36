package response

// VerifyResponse maps a directory name (0th, Exif, GPS, 1st) to its tags.
type VerifyResponse map[string]map[string]string
