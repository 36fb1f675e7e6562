package platform

// CreateTokenPayload is the body of the token creation request.
// Fields after LPTradingFee are platform terms that are the same for every launch.
type CreateTokenPayload struct {
	Name         string  `json:"name"`
	ShortName    string  `json:"shortName"`
	Desc         string  `json:"desc"`
	ImgURL       string  `json:"imgUrl"`
	LaunchTime   int64   `json:"launchTime"`
	Label        string  `json:"label"`
	PreSale      string  `json:"preSale"`
	OnlyMPC      bool    `json:"onlyMPC"`
	WebURL       string  `json:"webUrl,omitempty"`
	TwitterURL   string  `json:"twitterUrl,omitempty"`
	TelegramURL  string  `json:"telegramUrl,omitempty"`
	LPTradingFee float64 `json:"lpTradingFee"`

	TotalSupply   int64   `json:"totalSupply"`
	RaisedAmount  float64 `json:"raisedAmount"`
	SaleRate      float64 `json:"saleRate"`
	ReserveRate   float64 `json:"reserveRate"`
	FunGroup      bool    `json:"funGroup"`
	ClickFun      bool    `json:"clickFun"`
	Symbol        string  `json:"symbol"`
	SymbolAddress string  `json:"symbolAddress"`
}
