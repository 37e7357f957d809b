package models

// Table represents a physical restaurant table. The table number is a
// human-readable unique label ("Masa 1"); QRCode holds the opaque payload
// encoded into the printed QR sticker.
type Table struct {
	ID          int64  `json:"id,omitempty"`
	TableNumber string `json:"table_number"`
	QRCode      string `json:"qr_code,omitempty"`
	Capacity    int    `json:"capacity"`
	IsOccupied  bool   `json:"is_occupied"`
	Location    string `json:"location,omitempty"`
}
