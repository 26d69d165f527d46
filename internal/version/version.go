package version

import "fmt"

// Заполняются линкером через -ldflags при сборке CI.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Info описывает метаданные сборки в структурном виде (для /version).
type Info struct {
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
}

func Get() Info {
	return Info{
		BuildDate: orDev(BuildDate),
		Commit:    orDev(BuildCommit),
		Branch:    orDev(BuildBranch),
	}
}

func String() string {
	i := Get()
	return fmt.Sprintf("pirate-server %s (%s, %s)", i.BuildDate, i.Branch, i.Commit)
}

func orDev(s string) string {
	if s == "" {
		return "dev"
	}
	return s
}
