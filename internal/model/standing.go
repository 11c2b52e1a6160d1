package model

// Standing 积分榜一行（足球篮球共用，篮球 drawn 恒为 0）
type Standing struct {
	Position       int      `json:"position"`
	Team           string   `json:"team"`
	TeamLogo       string   `json:"team_logo"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goals_for"`
	GoalsAgainst   int      `json:"goals_against"`
	GoalDifference int      `json:"goal_difference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
}

// ParseForm 把 "W,D,L" 或 "WDL" 拆成单字母列表，最多保留 limit 个
func ParseForm(form string, limit int) []string {
	out := make([]string, 0, limit)
	for _, r := range form {
		if len(out) >= limit {
			break
		}
		switch r {
		case 'W', 'D', 'L':
			out = append(out, string(r))
		}
	}
	return out
}
