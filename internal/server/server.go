package server

// Server объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей.
type Server struct {
	DealServer
	AlertServer
}

func NewServer(
	dealServer DealServer,
	alertServer AlertServer,
) Server {
	return Server{
		DealServer:  dealServer,
		AlertServer: alertServer,
	}
}
