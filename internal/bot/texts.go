package bot

import "strings"

// User-facing strings and button labels. Labels double as the verbatim text
// a button click sends back, so matching is done on these exact values.
const (
	labelRecommend = "แนะนำการ์ดจอ"
	labelNVIDIA    = "การ์ดจอ NVDIA"
	labelAMD       = "การ์ดจอ AMD"

	textWelcomeSuffix = "g Test พร้อมใช้งานครับ สามารถเลือก spec การ์ดจอได้เลยครับ"
	textAskPrice      = "ขอทราบราคาครับ"
	textAskMemory     = "ขอทราบรายละเอียดเพิ่มเติมครับ"
	textPriceRange    = "กรุณาเลือกราคาภายในช่วง 5000-100000 บาทครับ"
	textPriceNumeric  = "กรุณาระบุราคาเป็นตัวเลขครับ"
	textMemoryChoices = "กรุณาเลือกระหว่าง RAM 4 GB, 6 GB, 8 GB หรือ 12 GB ครับ"
	textSearching     = "กำลังค้นหาการ์ดจอที่ตรงกับความต้องการของคุณ..."
	textOutOfScope    = "ผมไม่สามารถตอบคำถามนอกเหนือจาก GPU ได้ครับ"
	textNoRecommend   = "ไม่มีการ์ดจอที่แนะนำในช่วงนี้"
	textNoMatch       = "ไม่พบสินค้าที่ตรงกับความต้องการของคุณ."
	textFollowUp      = "ต้องการค้นหาการ์ดจอเพิ่มเติมหรือไม่?"
	textAIUnavailable = "ไม่สามารถตอบคำถามได้ในขณะนี้."

	// appended to free-text questions before they reach the answerer:
	// keep the reply under 30 words
	answerPromptSuffix = "สรุปคำตอบโดยไม่เกิน30คำ"
)

var greetings = []string{"สวัสดีครับ", "สวัสดีค่ะ"}

var priceLabels = []string{
	"5000 บาท", "10000 บาท", "15000 บาท", "25000 บาท",
	"35000 บาท", "50000 บาท", "80000 บาท", "100000 บาท",
}

var memoryLabels = []string{"RAM 4 GB", "RAM 6 GB", "RAM 8 GB", "RAM 12 GB"}

var gpuKeywords = []string{
	"GPU",
	"กราฟิกการ์ด", "วีจีเอ", "การเลือกซื้อการ์ดจอ",
}

// isGPUQuestion gates free-text questions: only messages containing at least
// one GPU term (case-insensitive substring) go to the fallback answerer.
func isGPUQuestion(msg string) bool {
	lower := strings.ToLower(msg)
	for _, kw := range gpuKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
