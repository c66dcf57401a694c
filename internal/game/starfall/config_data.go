package starfall

// 真钱模型（目标RTP约96%，由rtp_benchmark_test验证）
const _realProfileRaw = `
{
  "game_id": 19327,
  "pay_table": [
    {"symbol": 1, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.2"}, {"count": 6, "pay": "0.3"}, {"count": 8, "pay": "0.5"},
               {"count": 10, "pay": "1.0"}, {"count": 12, "pay": "2.0"}, {"count": 15, "pay": "5.0"}]},
    {"symbol": 2, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.2"}, {"count": 6, "pay": "0.4"}, {"count": 8, "pay": "0.6"},
               {"count": 10, "pay": "1.2"}, {"count": 12, "pay": "2.5"}, {"count": 15, "pay": "6.0"}]},
    {"symbol": 3, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.3"}, {"count": 6, "pay": "0.5"}, {"count": 8, "pay": "0.8"},
               {"count": 10, "pay": "1.5"}, {"count": 12, "pay": "3.0"}, {"count": 15, "pay": "8.0"}]},
    {"symbol": 4, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.4"}, {"count": 6, "pay": "0.6"}, {"count": 8, "pay": "1.0"},
               {"count": 10, "pay": "2.0"}, {"count": 12, "pay": "4.0"}, {"count": 15, "pay": "10.0"}]},
    {"symbol": 5, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.5"}, {"count": 6, "pay": "0.8"}, {"count": 8, "pay": "2.0"},
               {"count": 10, "pay": "4.0"}, {"count": 12, "pay": "10.0"}, {"count": 15, "pay": "25.0"}]},
    {"symbol": 6, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.8"}, {"count": 6, "pay": "1.2"}, {"count": 8, "pay": "3.0"},
               {"count": 10, "pay": "6.0"}, {"count": 12, "pay": "15.0"}, {"count": 15, "pay": "40.0"}]},
    {"symbol": 7, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "1.0"}, {"count": 6, "pay": "2.0"}, {"count": 8, "pay": "5.0"},
               {"count": 10, "pay": "12.0"}, {"count": 12, "pay": "30.0"}, {"count": 15, "pay": "100.0"}]}
  ],
  "symbol_weights": {
    "base":       [215, 195, 170, 145, 115, 85, 50, 25],
    "free_spins": [205, 185, 165, 145, 120, 95, 55, 30]
  },
  "scatter_chance": {"base": 0.014, "free_spins": 0.011},
  "multiplier_trigger_ratio": {"base": 0.11, "free_spins": 0.24},
  "multiplier_table": [
    {"value": 2, "cum_weight": 38},
    {"value": 3, "cum_weight": 64},
    {"value": 5, "cum_weight": 82},
    {"value": 8, "cum_weight": 92},
    {"value": 10, "cum_weight": 97},
    {"value": 25, "cum_weight": 100}
  ],
  "trigger_scatter_count": 4,
  "free_spins_award": 10,
  "retrigger_award": 5
}
`

// 试玩模型（RTP上调的独立配置，不是真钱模型的倍数缩放）
const _demoProfileRaw = `
{
  "game_id": 19327,
  "pay_table": [
    {"symbol": 1, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.2"}, {"count": 6, "pay": "0.3"}, {"count": 8, "pay": "0.5"},
               {"count": 10, "pay": "1.0"}, {"count": 12, "pay": "2.0"}, {"count": 15, "pay": "5.0"}]},
    {"symbol": 2, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.2"}, {"count": 6, "pay": "0.4"}, {"count": 8, "pay": "0.6"},
               {"count": 10, "pay": "1.2"}, {"count": 12, "pay": "2.5"}, {"count": 15, "pay": "6.0"}]},
    {"symbol": 3, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.3"}, {"count": 6, "pay": "0.5"}, {"count": 8, "pay": "0.8"},
               {"count": 10, "pay": "1.5"}, {"count": 12, "pay": "3.0"}, {"count": 15, "pay": "8.0"}]},
    {"symbol": 4, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.4"}, {"count": 6, "pay": "0.6"}, {"count": 8, "pay": "1.0"},
               {"count": 10, "pay": "2.0"}, {"count": 12, "pay": "4.0"}, {"count": 15, "pay": "10.0"}]},
    {"symbol": 5, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.5"}, {"count": 6, "pay": "0.8"}, {"count": 8, "pay": "2.0"},
               {"count": 10, "pay": "4.0"}, {"count": 12, "pay": "10.0"}, {"count": 15, "pay": "25.0"}]},
    {"symbol": 6, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "0.8"}, {"count": 6, "pay": "1.2"}, {"count": 8, "pay": "3.0"},
               {"count": 10, "pay": "6.0"}, {"count": 12, "pay": "15.0"}, {"count": 15, "pay": "40.0"}]},
    {"symbol": 7, "min_cluster": 5, "wild_joins": true,
     "tiers": [{"count": 5, "pay": "1.0"}, {"count": 6, "pay": "2.0"}, {"count": 8, "pay": "5.0"},
               {"count": 10, "pay": "12.0"}, {"count": 12, "pay": "30.0"}, {"count": 15, "pay": "100.0"}]}
  ],
  "symbol_weights": {
    "base":       [180, 170, 160, 150, 130, 105, 65, 40],
    "free_spins": [170, 160, 155, 150, 135, 110, 70, 50]
  },
  "scatter_chance": {"base": 0.022, "free_spins": 0.017},
  "multiplier_trigger_ratio": {"base": 0.18, "free_spins": 0.34},
  "multiplier_table": [
    {"value": 2, "cum_weight": 30},
    {"value": 3, "cum_weight": 55},
    {"value": 5, "cum_weight": 76},
    {"value": 8, "cum_weight": 89},
    {"value": 10, "cum_weight": 96},
    {"value": 25, "cum_weight": 100}
  ],
  "trigger_scatter_count": 4,
  "free_spins_award": 10,
  "retrigger_award": 5
}
`
