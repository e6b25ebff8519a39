package models

// NameCount is one bucket of a group-and-count report.
type NameCount struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type TopAssetOwner struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	TotalAssets int64  `json:"totalAssets"`
}

type TopIncidentAsset struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	TotalIncidents int64  `json:"totalIncidents"`
}

type TopIncidentResolver struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	ResolvedIncidents int64  `json:"resolvedIncidents"`
}

type TopRequestor struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	TotalRequests int64  `json:"totalRequests"`
}

type TopRequestResolver struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	ResolvedRequests int64  `json:"resolvedRequests"`
}

type TopAuthor struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	TotalArticles int64  `json:"totalArticles"`
}

type TopArticleAsset struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	TotalArticles int64  `json:"totalArticles"`
}
