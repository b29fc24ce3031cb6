package dto

type CreateScriptRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Code         string `json:"code"`
	Game         string `json:"game,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type UpdateScriptRequest struct {
	ID           uint    `json:"id"`
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Code         *string `json:"code,omitempty"`
	Game         *string `json:"game,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
}

type FavoriteRequest struct {
	ScriptID uint `json:"scriptId"`
}

type DownloadTokenResponse struct {
	Token string `json:"token"`
}
