package feedback

import "testing"

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		in     string
		want   Sentiment
		wantOk bool
	}{
		{in: "Positive", want: SentimentPositive, wantOk: true},
		{in: "Neutral", want: SentimentNeutral, wantOk: true},
		{in: "Negative", want: SentimentNegative, wantOk: true},
		{in: "", want: SentimentNeutral},
		{in: "positive", want: SentimentNeutral}, // labels are case-sensitive on the wire
		{in: "Mixed", want: SentimentNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSentiment(tt.in)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("ParseSentiment(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
