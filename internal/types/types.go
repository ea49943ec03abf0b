package types

type CreateTxRequest struct {
	PublicKey string   `json:"publicKey,optional" validate:"required"`
	Number    string   `json:"number,optional" validate:"required"`
	Color     string   `json:"color,optional" validate:"required"`
	Hobbies   []string `json:"hobbies,optional" validate:"required,min=1"`
}

type CreateTxResponse struct {
	Transaction string `json:"transaction"`
	Message     string `json:"message"`
}

type HealthRequest struct {
}

type HealthResponse struct {
	Status string `json:"status"`
	Rpc    string `json:"rpc"`
}
