package models

// Poll представляет опрос: вопрос и до четырёх вариантов ответа.
// Option3 и Option4 необязательны и могут быть пустыми строками.
type Poll struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Question  string `json:"question" gorm:"not null"`
	Option1   string `json:"option1" gorm:"not null"`
	Option2   string `json:"option2" gorm:"not null"`
	Option3   string `json:"option3"`
	Option4   string `json:"option4"`
	CreatedBy uint   `json:"created_by" gorm:"not null;index"` // Внешний ключ для связи с User (владелец опроса)
	User      User   `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Options возвращает все четыре слота вариантов ответа по порядку,
// включая пустые.
func (p *Poll) Options() [4]string {
	return [4]string{p.Option1, p.Option2, p.Option3, p.Option4}
}
