package store

// Status máquina de estados de cada slice: idle → loading → {loaded, failed}.
// failed conserva el snapshot anterior de datos (vale más una lista vieja que
// una pantalla en blanco durante un refresco fallido).
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)
