package engine

// Config — настройки движка.
type Config struct {
	// Seed для бросков точности пушек (и генерации карты в main).
	// 0 означает "взять случайный" — это делает вызывающий.
	Seed int64

	// ScanRadius — радиус сканирования штурмана по умолчанию.
	ScanRadius int

	// LineOfSightScan включает фильтр прямой видимости в отчете
	// сканирования: объекты за сушей не видны.
	LineOfSightScan bool
}

func NewConfig() Config {
	return Config{
		ScanRadius:      5,
		LineOfSightScan: true,
	}
}
