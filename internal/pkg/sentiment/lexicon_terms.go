package sentiment

var positiveTerms = []string{
	// 中文
	"好", "很好", "不错", "喜欢", "满意", "精彩", "优秀", "清晰", "清楚", "易懂",
	"有趣", "有意思", "有用", "实用", "收获", "受益", "受益匪浅", "推荐", "值得",
	"认真", "负责", "耐心", "热情", "生动", "细致", "详细", "透彻", "深入浅出",
	"专业", "幽默", "棒", "赞", "优质", "高效", "轻松", "充实", "感谢", "佩服",
	"完美", "出色", "扎实", "丰富", "干货", "开心", "愉快", "满分", "好评", "给力",
	"提升", "进步", "启发", "靠谱", "用心", "通俗易懂", "条理清晰", "印象深刻",
	// English
	"good", "great", "excellent", "amazing", "awesome", "clear", "helpful",
	"useful", "interesting", "enjoy", "enjoyed", "love", "loved", "like", "liked",
	"recommend", "recommended", "engaging", "fantastic", "best", "well",
	"informative", "insightful", "fun", "patient", "knowledgeable", "perfect",
	"nice", "valuable", "organized", "brilliant",
}

var negativeTerms = []string{
	// 中文
	"差", "很差", "糟糕", "讨厌", "失望", "无聊", "枯燥", "乏味", "没意思", "难懂",
	"听不懂", "混乱", "敷衍", "浪费", "浪费时间", "垃圾", "烂", "坑", "水", "水课",
	"拖沓", "啰嗦", "模糊", "迟到", "不负责", "照本宣科", "困", "犯困", "难受",
	"痛苦", "后悔", "差评", "吃力", "太难", "繁重", "压力", "无用", "没用", "不满",
	"生气", "抱怨", "过时", "陈旧", "一般般", "凑合", "失败", "错误", "问题",
	// English
	"bad", "poor", "boring", "terrible", "awful", "confusing", "useless", "hate",
	"hated", "dislike", "worst", "waste", "unclear", "disappointing",
	"disappointed", "difficult", "messy", "disorganized", "slow", "dull",
	"outdated", "unhelpful", "rude", "horrible",
}

var negatorTerms = []string{
	"不", "没", "没有", "无", "非", "别", "未", "并不", "从不", "毫不", "不太", "不是",
	"not", "no", "never", "hardly", "barely", "nothing",
}

var intensifierTerms = []string{
	"非常", "很", "特别", "太", "超级", "极其", "十分", "相当", "真", "真的", "最",
	"挺", "超", "格外", "尤其", "太过",
	"very", "really", "extremely", "so", "super", "highly", "incredibly", "truly",
	"quite",
}
