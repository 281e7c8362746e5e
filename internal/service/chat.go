package service

import (
	"strings"

	"github.com/gramsathi/gramsathi-api/internal/model"
)

type chatRule struct {
	keywords []string
	reply    model.ChatReply
}

// chatRules are checked in order against the lower-cased message; any
// keyword occurring as a substring selects the rule.
var chatRules = []chatRule{
	{
		keywords: []string{"farmer", "agriculture"},
		reply: model.ChatReply{
			Response:         "For farmers, I recommend PM-KISAN Samman Nidhi scheme which provides ₹6,000 per year. You can also check Crop Insurance schemes.",
			SuggestedSchemes: []string{"pm-kisan"},
		},
	},
	{
		keywords: []string{"health", "medical"},
		reply: model.ChatReply{
			Response:         "For health benefits, Ayushman Bharat provides health cover up to ₹5 lakh per family. Check if you're eligible!",
			SuggestedSchemes: []string{"ayushman-bharat"},
		},
	},
	{
		keywords: []string{"business", "loan"},
		reply: model.ChatReply{
			Response:         "For business loans, MUDRA Yojana offers loans up to ₹10 lakh without collateral for small enterprises.",
			SuggestedSchemes: []string{"mudra-yojana"},
		},
	},
}

const chatFallback = "I can help you find government schemes. Try asking about farmer schemes, health benefits, or business loans."

// SchemeChat answers a free-text question with a canned reply.
func SchemeChat(message string) model.ChatReply {
	msg := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return model.ChatReply{
					Response:         rule.reply.Response,
					SuggestedSchemes: append([]string(nil), rule.reply.SuggestedSchemes...),
				}
			}
		}
	}
	return model.ChatReply{Response: chatFallback, SuggestedSchemes: []string{}}
}
