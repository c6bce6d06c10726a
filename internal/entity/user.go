package entity

// User is an account that owns portfolios, transactions, recommendations
// and risk analyses. PasswordHash is a bcrypt digest and is never
// serialized.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:128;not null" json:"-"`

	Portfolios      []Portfolio      `gorm:"foreignKey:UserID" json:"-"`
	Transactions    []Transaction    `gorm:"foreignKey:UserID" json:"-"`
	Recommendations []Recommendation `gorm:"foreignKey:UserID" json:"-"`
	RiskAnalyses    []RiskAnalysis   `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
