// Package conf holds the bootstrap configuration scanned from configs/.
package conf

// Bootstrap is the root configuration document.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
}

// Server configures the transport endpoints.
type Server struct {
	Http *Endpoint `json:"http"`
	Grpc *Endpoint `json:"grpc"`
}

// Endpoint is one listen endpoint; Timeout is a Go duration string ("1s").
type Endpoint struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Data configures storage and messaging backends.
type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
	Rabbitmq *Rabbitmq `json:"rabbitmq"`
}

type Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Redis struct {
	Addr string `json:"addr"`
}

type Rabbitmq struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Vhost    string `json:"vhost"`
	Exchange string `json:"exchange"`
}
