package entity

// MonthlyUsage is one bar of the usage history chart.
type MonthlyUsage struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DashboardStats is the filtered statistics payload.
type DashboardStats struct {
	Filter            string          `json:"filter"`
	TotalReservations int             `json:"totalReservations"`
	RedHouseholds     int             `json:"redHouseholds"`
	YellowHouseholds  int             `json:"yellowHouseholds"`
	GreenHouseholds   int             `json:"greenHouseholds"`
	NewUsers          int             `json:"newUsers"`
	CancelCount       int             `json:"cancelCount"`
	UsageHistory      []*MonthlyUsage `json:"usageHistory"`
}

// TopUser is one entry of the frequent-visitor ranking.
type TopUser struct {
	NameKana  string `json:"name_kana"`
	NameKanji string `json:"name_kanji"`
	Visits    int    `json:"visits"`
}
