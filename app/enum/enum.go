package enum

//go:generate go run github.com/go-pkgz/enum@latest -type colorMode -lower
type colorMode int

const (
	colorModeLight colorMode = iota
	colorModeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type source -lower
type source int

const (
	sourceStored  source = iota
	sourceSignal         // enum:alias=client-hint
	sourceDefault
)

//go:generate go run github.com/go-pkgz/enum@latest -type backend -lower
type backend int

const (
	backendCookie backend = iota
	backendDB             // enum:alias=database
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres
)
