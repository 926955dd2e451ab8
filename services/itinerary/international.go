package itinerary

import (
	"context"
	"strings"
	"unicode"

	"wayfare/utils"

	"go.uber.org/zap"
)

// domesticKeywords short-circuit a destination to "domestic". The list covers
// the country name, major domestic cities, and their Han spellings.
var domesticKeywords = []string{
	"china", "中国", "中华",
	"beijing", "北京", "shanghai", "上海", "guangzhou", "广州",
	"shenzhen", "深圳", "chengdu", "成都", "hangzhou", "杭州",
	"xi'an", "xian", "西安", "chongqing", "重庆", "nanjing", "南京",
	"wuhan", "武汉", "suzhou", "苏州", "qingdao", "青岛",
	"xiamen", "厦门", "changsha", "长沙", "kunming", "昆明",
	"sanya", "三亚", "lijiang", "丽江", "guilin", "桂林",
	"dali", "大理", "lhasa", "拉萨", "harbin", "哈尔滨",
	"hong kong", "香港", "macau", "澳门", "taiwan", "台湾", "taipei", "台北",
}

// foreignKeywordGroups short-circuit to "international". Each group holds the
// Latin and Han spellings of one country and its common destination cities;
// matching any member matches the group.
var foreignKeywordGroups = [][]string{
	{"japan", "tokyo", "osaka", "kyoto", "okinawa", "hokkaido", "日本", "东京", "大阪", "京都", "冲绳", "北海道"},
	{"korea", "seoul", "busan", "jeju", "韩国", "首尔", "釜山", "济州"},
	{"thailand", "bangkok", "phuket", "chiang mai", "泰国", "曼谷", "普吉", "清迈"},
	{"singapore", "新加坡"},
	{"malaysia", "kuala lumpur", "马来西亚", "吉隆坡"},
	{"vietnam", "hanoi", "da nang", "越南", "河内", "岘港"},
	{"indonesia", "bali", "jakarta", "印尼", "印度尼西亚", "巴厘岛", "雅加达"},
	{"philippines", "manila", "cebu", "菲律宾", "马尼拉", "宿务"},
	{"india", "delhi", "mumbai", "印度", "德里", "孟买"},
	{"maldives", "马尔代夫"},
	{"uae", "dubai", "abu dhabi", "阿联酋", "迪拜", "阿布扎比"},
	{"turkey", "istanbul", "土耳其", "伊斯坦布尔"},
	{"egypt", "cairo", "埃及", "开罗"},
	{"france", "paris", "法国", "巴黎"},
	{"italy", "rome", "venice", "florence", "milan", "意大利", "罗马", "威尼斯", "佛罗伦萨", "米兰"},
	{"spain", "barcelona", "madrid", "西班牙", "巴塞罗那", "马德里"},
	{"germany", "berlin", "munich", "德国", "柏林", "慕尼黑"},
	{"switzerland", "zurich", "geneva", "瑞士", "苏黎世", "日内瓦"},
	{"netherlands", "amsterdam", "荷兰", "阿姆斯特丹"},
	{"greece", "athens", "santorini", "希腊", "雅典", "圣托里尼"},
	{"iceland", "reykjavik", "冰岛", "雷克雅未克"},
	{"united kingdom", "london", "england", "scotland", "英国", "伦敦", "苏格兰"},
	{"russia", "moscow", "st petersburg", "俄罗斯", "莫斯科", "圣彼得堡"},
	{"united states", "usa", "new york", "los angeles", "san francisco", "las vegas", "美国", "纽约", "洛杉矶", "旧金山", "拉斯维加斯"},
	{"canada", "toronto", "vancouver", "加拿大", "多伦多", "温哥华"},
	{"mexico", "cancun", "墨西哥", "坎昆"},
	{"brazil", "rio", "巴西", "里约"},
	{"australia", "sydney", "melbourne", "澳大利亚", "悉尼", "墨尔本"},
	{"new zealand", "auckland", "queenstown", "新西兰", "奥克兰", "皇后镇"},
	{"kenya", "nairobi", "肯尼亚", "内罗毕"},
	{"morocco", "marrakech", "摩洛哥", "马拉喀什"},
}

// isInternational resolves the destination classification once per request,
// memoized per normalized destination for the lifetime of this service
// instance. The optional oracle overrides the heuristic; oracle failures fall
// back silently.
func (s *DefaultItineraryService) isInternational(ctx context.Context, destination string) bool {
	key := strings.ToLower(strings.TrimSpace(destination))

	s.intlMu.RLock()
	cached, ok := s.intlMemo[key]
	s.intlMu.RUnlock()
	if ok {
		return cached
	}

	result := heuristicInternational(key)
	if s.Classifier != nil {
		if v, err := s.Classifier.Classify(ctx, destination); err == nil {
			result = v
		} else {
			utils.GetLogger().Debug("internationality oracle failed, using heuristic",
				zap.String("destination", destination), zap.Error(err))
		}
	}

	s.intlMu.Lock()
	s.intlMemo[key] = result
	s.intlMu.Unlock()
	return result
}

// heuristicInternational classifies a normalized (trimmed, lower-cased)
// destination by keyword. Unrecognized destinations default to domestic; the
// conservative default suppresses imagery enrichment for them, which is
// flagged for product review.
func heuristicInternational(normalized string) bool {
	for _, kw := range domesticKeywords {
		if strings.Contains(normalized, kw) {
			return false
		}
	}
	for _, group := range foreignKeywordGroups {
		for _, kw := range group {
			if strings.Contains(normalized, kw) {
				return true
			}
		}
	}
	return false
}

// containsHan reports whether the text already uses the home-region script.
func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
