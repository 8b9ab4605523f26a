package constants

type colors struct {
	Main  int
	Error int
	Good  int
	Info  int
}

var Colors = colors{
	Main:  0x5865f2,
	Error: 0xf42c2c,
	Good:  0x2cd649,
	Info:  0xefe92d,
}
