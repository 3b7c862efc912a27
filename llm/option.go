package llm

type GenerateOptions struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
	StopWords   []string
}

type GenerateOption func(*GenerateOptions)

func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{}
}

func WithTemperature(temperature float32) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.Temperature = temperature
	}
}

func WithTopP(topP float32) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.TopP = topP
	}
}

func WithMaxTokens(maxTokens int) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.MaxTokens = maxTokens
	}
}

func WithStopWords(stopWords []string) GenerateOption {
	return func(opts *GenerateOptions) {
		opts.StopWords = stopWords
	}
}
