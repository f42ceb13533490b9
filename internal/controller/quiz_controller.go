package controller

import (
	"strconv"

	"github.com/Sspung/AIMatchMaker/internal/model"
	"github.com/Sspung/AIMatchMaker/internal/service"
	"github.com/Sspung/AIMatchMaker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuizController struct {
	Quiz      *service.QuizService
	Recommend *service.RecommendService
}

func NewQuizController(quiz *service.QuizService, recommend *service.RecommendService) *QuizController {
	return &QuizController{Quiz: quiz, Recommend: recommend}
}

type AnswersRequest struct {
	Answers model.AnswerMap `json:"answers" binding:"required"`
}

type NavigateRequest struct {
	Answers           model.AnswerMap `json:"answers" binding:"required"`
	CurrentQuestionID uint            `json:"currentQuestionId" binding:"required"`
}

// @Summary 测验题目全集
// @Tags 测验
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	questions, err := c.Quiz.Questions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 当前会话的有效问题序列
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body AnswersRequest true "已作答的槽位"
// @Success 200 {object} util.Response
// @Router /api/quiz/sequence [post]
func (c *QuizController) GetSequence(ctx *gin.Context) {
	var req AnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	seq, err := c.Quiz.Sequence(req.Answers)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, seq)
}

// @Summary 下一题
// @Description 返回下一题 id；submit 为 true 表示序列已走完，该提交答案了。
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body NavigateRequest true "答案与当前题目"
// @Success 200 {object} util.Response
// @Router /api/quiz/next [post]
func (c *QuizController) NextQuestion(ctx *gin.Context) {
	var req NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	nextID, submit, err := c.Quiz.Next(req.Answers, req.CurrentQuestionID)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{
		"nextQuestionId": nextID,
		"submit":         submit,
	})
}

// @Summary 上一题
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body NavigateRequest true "答案与当前题目"
// @Success 200 {object} util.Response
// @Router /api/quiz/previous [post]
func (c *QuizController) PreviousQuestion(ctx *gin.Context) {
	var req NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prevID, ok, err := c.Quiz.Previous(req.Answers, req.CurrentQuestionID)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{
		"previousQuestionId": prevID,
		"hasPrevious":        ok,
	})
}

// @Summary 提交答案获取推荐
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body AnswersRequest true "完整答案"
// @Success 200 {object} util.Response
// @Router /api/quiz/recommend [post]
func (c *QuizController) GetRecommendations(ctx *gin.Context) {
	var req AnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Recommend.Recommend(req.Answers)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}

// @Summary 单个工具的匹配度
// @Description 详情页用的归一化匹配度，与批量排序的分数口径不同。
// @Tags 测验
// @Accept json
// @Produce json
// @Param toolId path int true "工具ID"
// @Param body body AnswersRequest true "完整答案"
// @Success 200 {object} util.Response
// @Router /api/quiz/match/{toolId} [post]
func (c *QuizController) GetToolMatch(ctx *gin.Context) {
	toolID, err := strconv.Atoi(ctx.Param("toolId"))
	if err != nil {
		util.BadRequest(ctx, "invalid tool id")
		return
	}

	var req AnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pct, err := c.Recommend.MatchForTool(uint(toolID), req.Answers)
	if err == gorm.ErrRecordNotFound {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"matchPercentage": pct})
}
