package models

// Flash tipos.
const (
	FlashOk    = "ok"
	FlashError = "error"
)

// Flash is a one-shot notification kept in session state. It is consumed
// (read then cleared) by the next render of the sesiones page.
type Flash struct {
	Tipo    string `json:"tipo"`
	Mensaje string `json:"mensaje"`
}
