package config

import "fmt"

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	LogLevel  int
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string

	MaxLimit     int
	DefaultLimit int
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}
