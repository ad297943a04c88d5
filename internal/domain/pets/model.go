package pets

// Pet es una mascota registrada. UserID == 0 solo ocurre durante una
// reasignación interna, nunca fuera de una llamada al Service.
type Pet struct {
	ID     int64
	Name   string
	UserID int64
}
