package config

// App holds everything the service reads from the environment.
type App struct {
	Port           string `env:"APP_PORT" default:"8080"`
	BackendBaseURL string `env:"BACKEND_BASE_URL,required"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	BorrowDays     int    `env:"BORROW_DAYS" default:"14"`
	ReturnTarget   string `env:"RETURN_DISPOSITION" default:"AVAILABLE"`
	Env            string `env:"APP_ENV" default:"dev"`
}
