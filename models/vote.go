package models

// Vote представляет голос пользователя в опросе. Пара (UserID, PollID)
// уникальна на уровне базы, поэтому второй голос того же пользователя
// не может появиться даже при гонке двух запросов.
type Vote struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_votes_user_poll"`
	PollID         uint   `json:"poll_id" gorm:"not null;uniqueIndex:idx_votes_user_poll"`
	SelectedOption string `json:"selected_option" gorm:"not null"` // Текст выбранного варианта, как прислал клиент
	User           User   `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Poll           Poll   `json:"-" gorm:"foreignKey:PollID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
