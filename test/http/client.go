package main

import (
	"context"
	"fmt"
	"time"

	v1 "starfall/api/game/v1"

	"github.com/yola1107/kratos/contrib/log/zap/v2"
	"github.com/yola1107/kratos/v2/log"
	"github.com/yola1107/kratos/v2/transport/http"
)

func main() {
	zapLogger := zap.New(nil)
	defer zapLogger.Close()

	log.SetLogger(zapLogger)

	log.Infof("start http client")
	defer log.Infof("close http client")

	client, err := http.NewClient(context.Background(),
		http.WithEndpoint("127.0.0.1:8000"),
		http.WithTimeout(5*time.Second),
	)
	if err != nil {
		panic(err)
	}
	defer client.Close()

	for i := 0; ; i++ {
		req := &v1.SpinRequest{
			MemberID: 10001,
			Bet:      "1.30",
			Profile:  "demo",
			Seed:     fmt.Sprintf("manual-%d", i),
		}
		var reply v1.SpinReply
		if err := client.Invoke(context.Background(), "POST", "/v1/spin", req, &reply); err != nil {
			log.Errorf("spin failed: %v", err)
		} else {
			log.Infof("spin %s: win=%s mult=%d steps=%d scatters=%d",
				reply.OrderSN, reply.Outcome.TotalWin, reply.Outcome.AppliedMultiplierTotal,
				len(reply.Outcome.Steps), reply.Outcome.ScatterCount)
		}
		time.Sleep(time.Second)
	}
}
