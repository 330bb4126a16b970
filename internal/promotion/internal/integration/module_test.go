// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/safetap/internal/promotion"
	"github.com/ecodeclub/safetap/internal/promotion/internal/web"
	"github.com/ecodeclub/safetap/internal/test"
	testioc "github.com/ecodeclub/safetap/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestPromotionModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module, err := promotion.InitModule(s.db)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PrivateRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine, func(_ *gin.Context) {})
	s.server = server
}

func (s *ModuleTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `promotions`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `discount_codes`").Error)
}

func (s *ModuleTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `promotions`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `discount_codes`").Error)
}

func (s *ModuleTestSuite) savePromotion(p web.Promotion) int64 {
	s.T().Helper()
	req, err := http.NewRequest(http.MethodPost,
		"/promotion/save", iox.NewJSONReader(web.SavePromotionReq{Promotion: p}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *ModuleTestSuite) TestSavePromotionThenPreview() {
	t := s.T()
	// 满5件85折
	id := s.savePromotion(web.Promotion{
		Name:        "五件起85折",
		MinQuantity: 5,
		Type:        1,
		Value:       15,
		Active:      true,
		Priority:    10,
	})
	require.NotZero(t, id)

	req, err := http.NewRequest(http.MethodPost,
		"/pricing/preview", iox.NewJSONReader(web.PreviewReq{
			Items: []web.CartItem{
				{SKU: "sticker-classic", UnitPrice: 6990, Quantity: 7},
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PreviewResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	resp := recorder.MustScan().Data
	assert.Equal(t, int64(48930), resp.OriginalTotal)
	assert.Equal(t, int64(7340), resp.TotalDiscount)
	assert.Equal(t, int64(41590), resp.FinalTotal)
	require.Len(t, resp.AppliedPromotions, 1)
	assert.Equal(t, "五件起85折", resp.AppliedPromotions[0].Name)
}

func (s *ModuleTestSuite) TestPreviewWithoutEligiblePromotion() {
	t := s.T()
	s.savePromotion(web.Promotion{
		Name:        "五件起85折",
		MinQuantity: 5,
		Type:        1,
		Value:       15,
		Active:      true,
	})

	req, err := http.NewRequest(http.MethodPost,
		"/pricing/preview", iox.NewJSONReader(web.PreviewReq{
			Items: []web.CartItem{
				{SKU: "sticker-classic", UnitPrice: 6990, Quantity: 1},
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PreviewResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	resp := recorder.MustScan().Data
	assert.Equal(t, int64(6990), resp.OriginalTotal)
	assert.Zero(t, resp.TotalDiscount)
	assert.Equal(t, int64(6990), resp.FinalTotal)
	assert.Empty(t, resp.AppliedPromotions)
}

func (s *ModuleTestSuite) TestValidateDiscountCode() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/discount-code/save", iox.NewJSONReader(web.SaveDiscountCodeReq{
			Code: web.DiscountCode{
				Code:     "WELCOME20",
				Type:     2,
				Value:    2000,
				MinTotal: 10000,
				Active:   true,
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	saveRecorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(saveRecorder, req)
	require.Equal(t, http.StatusOK, saveRecorder.Code)

	testCases := []struct {
		name     string
		req      web.ValidateCodeReq
		wantResp web.ValidateCodeResp
	}{
		{
			name: "满足门槛_立减2000",
			req:  web.ValidateCodeReq{Code: "WELCOME20", CartTotal: 15000},
			wantResp: web.ValidateCodeResp{
				Valid:          true,
				DiscountAmount: 2000,
				FinalTotal:     13000,
			},
		},
		{
			name: "不满足最低消费",
			req:  web.ValidateCodeReq{Code: "WELCOME20", CartTotal: 5000},
			wantResp: web.ValidateCodeResp{
				Valid:   false,
				Message: "未达到优惠码最低消费金额",
			},
		},
		{
			name: "优惠码不存在",
			req:  web.ValidateCodeReq{Code: "NO-SUCH-CODE", CartTotal: 5000},
			wantResp: web.ValidateCodeResp{
				Valid:   false,
				Message: "优惠码不存在",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/discount/validate", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.ValidateCodeResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan().Data)
		})
	}
}
