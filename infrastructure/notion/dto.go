package notion

// Wire types for the property-database HTTP API. Only the fields the
// sync engine reads are modeled; everything else is ignored on decode.

type databaseDTO struct {
	ID         string                 `json:"id"`
	Properties map[string]propertyDTO `json:"properties"`
}

type queryRequestDTO struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type queryResponseDTO struct {
	Results    []pageDTO `json:"results"`
	HasMore    bool      `json:"has_more"`
	NextCursor *string   `json:"next_cursor"`
}

type pageDTO struct {
	ID             string                 `json:"id"`
	LastEditedTime string                 `json:"last_edited_time"`
	Icon           *iconDTO               `json:"icon"`
	Properties     map[string]propertyDTO `json:"properties"`
}

type iconDTO struct {
	Type     string   `json:"type"`
	Emoji    string   `json:"emoji,omitempty"`
	External *fileDTO `json:"external,omitempty"`
	File     *fileDTO `json:"file,omitempty"`
}

type fileDTO struct {
	URL string `json:"url"`
}

type propertyDTO struct {
	Type        string            `json:"type"`
	Title       []richTextDTO     `json:"title,omitempty"`
	RichText    []richTextDTO     `json:"rich_text,omitempty"`
	Number      *float64          `json:"number,omitempty"`
	Checkbox    *bool             `json:"checkbox,omitempty"`
	URL         *string           `json:"url,omitempty"`
	CreatedTime *string           `json:"created_time,omitempty"`
	Select      *selectOptionDTO  `json:"select,omitempty"`
	Status      *selectOptionDTO  `json:"status,omitempty"`
	MultiSelect []selectOptionDTO `json:"multi_select,omitempty"`
	Date        *dateDTO          `json:"date,omitempty"`
	Relation    []relationDTO     `json:"relation,omitempty"`
	Formula     *formulaDTO       `json:"formula,omitempty"`
	Rollup      *rollupDTO        `json:"rollup,omitempty"`
}

type richTextDTO struct {
	PlainText string `json:"plain_text"`
}

type selectOptionDTO struct {
	Name string `json:"name"`
}

type dateDTO struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

type relationDTO struct {
	ID string `json:"id"`
}

type formulaDTO struct {
	Type    string   `json:"type"`
	Number  *float64 `json:"number,omitempty"`
	String  *string  `json:"string,omitempty"`
	Boolean *bool    `json:"boolean,omitempty"`
	Date    *dateDTO `json:"date,omitempty"`
}

type rollupDTO struct {
	Type   string        `json:"type"`
	Number *float64      `json:"number,omitempty"`
	Date   *dateDTO      `json:"date,omitempty"`
	Array  []propertyDTO `json:"array,omitempty"`
}

type errorResponseDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
