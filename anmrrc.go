package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// shieldTable holds absolute reference shieldings indexed by
// reference compound, geometry functional, NMR functional, and
// solvent
type shieldTable map[string]map[string]map[string]map[string]float64

var hTmShieldings = shieldTable{
	"TMS": {
		"pbeh-3c": {
			"tpss": {
				"gas":          32.0512048,
				"acetone":      32.03971003333333,
				"chcl3":        32.041133316666674,
				"acetonitrile": 32.03617056666667,
				"ch2cl2":       32.04777176666666,
				"dmso":         32.039681316666666,
				"h2o":          32.036860174999994,
				"methanol":     32.04573335,
				"thf":          32.04154705833333,
				"toluene":      32.02829061666666,
			},
			"pbe0": {
				"gas":          31.820450258333327,
				"acetone":      31.801199816666667,
				"chcl3":        31.807363400000003,
				"acetonitrile": 31.797744033333334,
				"ch2cl2":       31.815502166666665,
				"dmso":         31.797286500000002,
				"h2o":          31.801018416666665,
				"methanol":     31.809920125,
				"thf":          31.802681225,
				"toluene":      31.790892416666665,
			},
			"pbeh-3c": {
				"gas":          32.32369869999999,
				"acetone":      32.30552229166667,
				"chcl3":        32.30850654166667,
				"acetonitrile": 32.3015773,
				"ch2cl2":       32.31627083333333,
				"dmso":         32.303862816666665,
				"h2o":          32.30345545833333,
				"methanol":     32.3130819,
				"thf":          32.306951225,
				"toluene":      32.29417180833333,
			},
		},
		"b97-3c": {
			"tpss": {
				"gas":          32.099305599999994,
				"acetone":      32.07685382499999,
				"chcl3":        32.078372550000005,
				"acetonitrile": 32.067920741666676,
				"ch2cl2":       32.0876576,
				"dmso":         32.07713496666667,
				"h2o":          32.07222951666666,
				"methanol":     32.085467083333334,
				"thf":          32.07950451666667,
				"toluene":      32.06162065,
			},
			"pbe0": {
				"gas":          31.869211950000004,
				"acetone":      31.83879448333333,
				"chcl3":        31.845031441666663,
				"acetonitrile": 31.829924375,
				"ch2cl2":       31.855811533333338,
				"dmso":         31.835178675000005,
				"h2o":          31.83680665833334,
				"methanol":     31.850090208333338,
				"thf":          31.841073758333337,
				"toluene":      31.824697675,
			},
			"pbeh-3c": {
				"gas":          32.37107341666667,
				"acetone":      32.341934458333334,
				"chcl3":        32.34503841666666,
				"acetonitrile": 32.332714675,
				"ch2cl2":       32.35537393333334,
				"dmso":         32.34058045833333,
				"h2o":          32.338073200000004,
				"methanol":     32.35207416666667,
				"thf":          32.34418670833334,
				"toluene":      32.32693729166667,
			},
		},
		"tpss": {
			"tpss": {
				"gas":          31.86774000000001,
				"acetone":      31.848927016666664,
				"chcl3":        31.851003891666664,
				"acetonitrile": 31.843538541666664,
				"ch2cl2":       31.860415141666664,
				"dmso":         31.849057266666673,
				"h2o":          31.844762508333332,
				"methanol":     31.857667625,
				"thf":          31.851878716666665,
				"toluene":      31.833541825,
			},
			"pbe0": {
				"gas":          31.636587116666664,
				"acetone":      31.60924136666667,
				"chcl3":        31.616506625,
				"acetonitrile": 31.604173191666664,
				"ch2cl2":       31.62743169166667,
				"dmso":         31.604975658333334,
				"h2o":          31.607992624999994,
				"methanol":     31.620864658333335,
				"thf":          31.611675816666665,
				"toluene":      31.59546233333333,
			},
			"pbeh-3c": {
				"gas":          32.14311896666666,
				"acetone":      32.11710325,
				"chcl3":        32.12106585833333,
				"acetonitrile": 32.11156126666667,
				"ch2cl2":       32.1315459,
				"dmso":         32.114840533333336,
				"h2o":          32.11376850833333,
				"methanol":     32.127508733333336,
				"thf":          32.11950190833333,
				"toluene":      32.1023676,
			},
		},
	},
}

var hOrcaShieldings = shieldTable{
	"TMS": {
		"pbeh-3c": {
			"tpss": {
				"gas":          32.17000000000001,
				"acetone":      32.09433333333334,
				"chcl3":        32.10649999999999,
				"acetonitrile": 32.09366666666667,
				"ch2cl2":       32.099,
				"dmso":         32.09466666666666,
				"h2o":          32.10341666666666,
				"methanol":     32.09250000000001,
				"thf":          32.10183333333333,
				"toluene":      32.122833333333325,
			},
			"pbe0": {
				"gas":          31.819000000000003,
				"acetone":      31.732666666666663,
				"chcl3":        31.747000000000003,
				"acetonitrile": 31.73166666666667,
				"ch2cl2":       31.738416666666666,
				"dmso":         31.732666666666663,
				"h2o":          31.741500000000002,
				"methanol":     31.73066666666666,
				"thf":          31.74116666666667,
				"toluene":      31.765999999999995,
			},
			"pbeh-3c": {
				"gas":          32.324999999999996,
				"acetone":      32.23866666666667,
				"chcl3":        32.25299999999999,
				"acetonitrile": 32.23783333333333,
				"ch2cl2":       32.24466666666667,
				"dmso":         32.23866666666667,
				"h2o":          32.24733333333333,
				"methanol":     32.23666666666667,
				"thf":          32.24733333333333,
				"toluene":      32.272,
			},
		},
	},
}

var cTmShieldings = shieldTable{
	"TMS": {
		"pbeh-3c": {
			"tpss": {
				"gas":          186.6465687,
				"acetone":      187.27903107499998,
				"chcl3":        187.238498325,
				"acetonitrile": 187.372512775,
				"ch2cl2":       187.0771589,
				"dmso":         187.243299225,
				"h2o":          187.37157565,
				"methanol":     187.10988087500002,
				"thf":          187.19458635,
				"toluene":      187.48276635,
			},
			"pbe0": {
				"gas":          188.859355325,
				"acetone":      189.6196798,
				"chcl3":        189.4971041,
				"acetonitrile": 189.698041075,
				"ch2cl2":       189.318608125,
				"dmso":         189.68253637499998,
				"h2o":          189.65553119999998,
				"methanol":     189.409198575,
				"thf":          189.55889105,
				"toluene":      189.776394325,
			},
			"pbeh-3c": {
				"gas":          198.41611147499998,
				"acetone":      199.13367970000002,
				"chcl3":        199.054179875,
				"acetonitrile": 199.250248325,
				"ch2cl2":       198.845265825,
				"dmso":         199.185056825,
				"h2o":          199.2289907,
				"methanol":     198.917945675,
				"thf":          199.076003325,
				"toluene":      199.3931504,
			},
		},
		"b97-3c": {
			"tpss": {
				"gas":          186.97419324999998,
				"acetone":      187.496073025,
				"chcl3":        187.45393565,
				"acetonitrile": 187.554538075,
				"ch2cl2":       187.31238564999998,
				"dmso":         187.469466275,
				"h2o":          187.57139320000002,
				"methanol":     187.344972675,
				"thf":          187.42200885,
				"toluene":      187.671731225,
			},
			"pbe0": {
				"gas":          189.169130675,
				"acetone":      189.816064175,
				"chcl3":        189.69082477499998,
				"acetonitrile": 189.860330875,
				"ch2cl2":       189.532330975,
				"dmso":         189.88587445000002,
				"h2o":          189.8368566,
				"methanol":     189.62332455,
				"thf":          189.76569125,
				"toluene":      189.94371412499999,
			},
			"pbeh-3c": {
				"gas":          198.7168509,
				"acetone":      199.3308802,
				"chcl3":        199.25125382500002,
				"acetonitrile": 199.41320919999998,
				"ch2cl2":       199.06108425,
				"dmso":         199.390014125,
				"h2o":          199.41478467500002,
				"methanol":     199.13192775,
				"thf":          199.28161922500001,
				"toluene":      199.562540575,
			},
		},
		"tpss": {
			"tpss": {
				"gas":          185.410099625,
				"acetone":      185.99193982499997,
				"chcl3":        185.949648475,
				"acetonitrile": 186.0799505,
				"ch2cl2":       185.80363820000002,
				"dmso":         185.97415155,
				"h2o":          186.07484635,
				"methanol":     185.839592875,
				"thf":          185.9190184,
				"toluene":      186.17204557500003,
			},
			"pbe0": {
				"gas":          187.626469575,
				"acetone":      188.34549135,
				"chcl3":        188.212218325,
				"acetonitrile": 188.413268225,
				"ch2cl2":       188.04820440000003,
				"dmso":         188.42875420000001,
				"h2o":          188.3724699,
				"methanol":     188.14698049999998,
				"thf":          188.2963985,
				"toluene":      188.46803717499998,
			},
			"pbeh-3c": {
				"gas":          197.27823677499998,
				"acetone":      197.953274625,
				"chcl3":        197.871683925,
				"acetonitrile": 198.0615831,
				"ch2cl2":       197.6764831,
				"dmso":         198.014841225,
				"h2o":          198.048432475,
				"methanol":     197.75143105,
				"thf":          197.905333025,
				"toluene":      198.186480775,
			},
		},
	},
}

var cOrcaShieldings = shieldTable{
	"TMS": {
		"pbeh-3c": {
			"tpss": {
				"gas":          188.604,
				"acetone":      189.7395,
				"chcl3":        189.5435,
				"acetonitrile": 189.77,
				"ch2cl2":       189.6625,
				"dmso":         189.8015,
				"h2o":          189.8495,
				"methanol":     189.77,
				"thf":          189.647,
				"toluene":      189.30400000000003,
			},
			"pbe0": {
				"gas":          188.867,
				"acetone":      190.265,
				"chcl3":        190.02224999999999,
				"acetonitrile": 190.298,
				"ch2cl2":       190.16649999999998,
				"dmso":         190.33175,
				"h2o":          190.38799999999998,
				"methanol":     190.29875,
				"thf":          190.1445,
				"toluene":      189.73375,
			},
			"pbeh-3c": {
				"gas":          198.458,
				"acetone":      199.905,
				"chcl3":        199.649,
				"acetonitrile": 199.94,
				"ch2cl2":       199.8025,
				"dmso":         199.9715,
				"h2o":          200.0265,
				"methanol":     199.939,
				"thf":          199.7775,
				"toluene":      199.3395,
			},
		},
	},
}

var pTmShieldings = shieldTable{
	"TMP": {
		"pbeh-3c": {
			"tpss": {
				"gas":          281.6302978,
				"acetone":      265.4354914,
				"chcl3":        257.5409613,
				"acetonitrile": 263.2430698,
				"ch2cl2":       257.0543221,
				"dmso":         262.8752182,
				"h2o":          242.4838211,
				"methanol":     245.6431135,
				"thf":          266.7188352,
				"toluene":      269.0597797,
			},
			"pbe0": {
				"gas":          277.8252556,
				"acetone":      261.5502528,
				"chcl3":        254.1109855,
				"acetonitrile": 259.5059377,
				"ch2cl2":       253.6358478,
				"dmso":         258.7821425,
				"h2o":          239.5329333,
				"methanol":     242.1687948,
				"thf":          262.8378646,
				"toluene":      265.4050199,
			},
			"pbeh-3c": {
				"gas":          390.6073841,
				"acetone":      378.6668397,
				"chcl3":        373.2000393,
				"acetonitrile": 377.1343123,
				"ch2cl2":       372.9163524,
				"dmso":         376.6203422,
				"h2o":          362.7163813,
				"methanol":     364.8220379,
				"thf":          379.5051748,
				"toluene":      381.2789752,
			},
		},
		"b97-3c": {
			"tpss": {
				"gas":          276.8654211,
				"acetone":      259.8829696,
				"chcl3":        251.5648819,
				"acetonitrile": 257.7225804,
				"ch2cl2":       251.0880934,
				"dmso":         256.90761,
				"h2o":          234.4800595,
				"methanol":     237.4630709,
				"thf":          261.291204,
				"toluene":      263.9827571,
			},
			"pbe0": {
				"gas":          273.0911933,
				"acetone":      256.1507446,
				"chcl3":        248.2072561,
				"acetonitrile": 254.0571117,
				"ch2cl2":       247.7513367,
				"dmso":         253.0100842,
				"h2o":          231.7425518,
				"methanol":     234.1695454,
				"thf":          257.4644157,
				"toluene":      260.3717755,
			},
			"pbeh-3c": {
				"gas":          386.2437698,
				"acetone":      373.8145109,
				"chcl3":        368.1719462,
				"acetonitrile": 372.350904,
				"ch2cl2":       367.8934403,
				"dmso":         371.4995766,
				"h2o":          355.9965281,
				"methanol":     358.0517851,
				"thf":          374.7716841,
				"toluene":      376.8283779,
			},
		},
		"tpss": {
			"tpss": {
				"gas":          278.0447826,
				"acetone":      261.4382678,
				"chcl3":        253.5317417,
				"acetonitrile": 259.5831076,
				"ch2cl2":       253.0735218,
				"dmso":         258.8205488,
				"h2o":          236.9938311,
				"methanol":     240.0596152,
				"thf":          262.646474,
				"toluene":      265.5482099,
			},
			"pbe0": {
				"gas":          274.1582231,
				"acetone":      257.5976215,
				"chcl3":        250.0455696,
				"acetonitrile": 255.8739799,
				"ch2cl2":       249.6032437,
				"dmso":         254.7109046,
				"h2o":          234.1066151,
				"methanol":     236.6658834,
				"thf":          258.6914971,
				"toluene":      261.8410368,
			},
			"pbeh-3c": {
				"gas":          387.4697022,
				"acetone":      375.2569197,
				"chcl3":        369.9533245,
				"acetonitrile": 374.0256406,
				"ch2cl2":       369.6688695,
				"dmso":         373.1520781,
				"h2o":          358.1827766,
				"methanol":     360.3168296,
				"thf":          376.0015788,
				"toluene":      378.3153047,
			},
		},
	},
}

var pOrcaShieldings = shieldTable{
	"TMP": {
		"pbeh-3c": {
			"tpss": {
				"gas":          291.33,
				"acetone":      276.264,
				"chcl3":        277.254,
				"acetonitrile": 275.207,
				"ch2cl2":       276.171,
				"dmso":         276.988,
				"h2o":          262.671,
				"methanol":     263.366,
				"thf":          278.685,
				"toluene":      283.761,
			},
			"pbe0": {
				"gas":          277.761,
				"acetone":      262.673,
				"chcl3":        263.634,
				"acetonitrile": 261.631,
				"ch2cl2":       262.58,
				"dmso":         263.406,
				"h2o":          249.27,
				"methanol":     249.931,
				"thf":          265.061,
				"toluene":      270.123,
			},
			"pbeh-3c": {
				"gas":          390.602,
				"acetone":      379.7,
				"chcl3":        380.279,
				"acetonitrile": 378.978,
				"ch2cl2":       379.593,
				"dmso":         380.317,
				"h2o":          368.831,
				"methanol":     369.216,
				"thf":          381.391,
				"toluene":      384.986,
			},
		},
	},
}

var siTmShieldings = shieldTable{
	"TMS": {
		"pbeh-3c": {
			"tpss": {
				"gas":          334.2579542,
				"acetone":      334.1639413,
				"chcl3":        334.1459912,
				"acetonitrile": 334.1644763,
				"ch2cl2":       334.143167,
				"dmso":         334.2355086,
				"h2o":          334.1700712,
				"methanol":     334.1638302,
				"thf":          334.1765686,
				"toluene":      334.1672644,
			},
			"pbe0": {
				"gas":          332.1432161,
				"acetone":      332.0806043,
				"chcl3":        332.027555,
				"acetonitrile": 332.070525,
				"ch2cl2":       332.0181509,
				"dmso":         332.1389588,
				"h2o":          332.0768365,
				"methanol":     332.082777,
				"thf":          332.0989747,
				"toluene":      332.0655251,
			},
			"pbeh-3c": {
				"gas":          425.4500968,
				"acetone":      425.4194168,
				"chcl3":        425.3783658,
				"acetonitrile": 425.4187809,
				"ch2cl2":       425.3492293,
				"dmso":         425.4302912,
				"h2o":          425.4004059,
				"methanol":     425.3865089,
				"thf":          425.4157351,
				"toluene":      425.4555181,
			},
		},
		"b97-3c": {
			"tpss": {
				"gas":          334.5698984,
				"acetone":      334.0803779,
				"chcl3":        334.1093328,
				"acetonitrile": 334.0665281,
				"ch2cl2":       334.1280337,
				"dmso":         334.1272572,
				"h2o":          334.0495564,
				"methanol":     334.1137413,
				"thf":          334.1251606,
				"toluene":      334.1235476,
			},
			"pbe0": {
				"gas":          332.3546979,
				"acetone":      331.9058869,
				"chcl3":        331.8955148,
				"acetonitrile": 331.8800833,
				"ch2cl2":       331.9140658,
				"dmso":         331.948424,
				"h2o":          331.8617288,
				"methanol":     331.9375391,
				"thf":          331.9562723,
				"toluene":      331.9253075,
			},
			"pbeh-3c": {
				"gas":          426.0062656,
				"acetone":      425.7811084,
				"chcl3":        425.7602588,
				"acetonitrile": 425.745999,
				"ch2cl2":       425.7473718,
				"dmso":         425.779427,
				"h2o":          425.7365851,
				"methanol":     425.7713265,
				"thf":          425.7964293,
				"toluene":      425.8200844,
			},
		},
		"tpss": {
			"tpss": {
				"gas":          333.7779314,
				"acetone":      333.3511708,
				"chcl3":        333.3794838,
				"acetonitrile": 333.3298692,
				"ch2cl2":       333.3946486,
				"dmso":         333.3881767,
				"h2o":          333.3406562,
				"methanol":     333.3784136,
				"thf":          333.3860666,
				"toluene":      333.3885135,
			},
			"pbe0": {
				"gas":          331.5820841,
				"acetone":      331.1904714,
				"chcl3":        331.1839521,
				"acetonitrile": 331.1565218,
				"ch2cl2":       331.1982524,
				"dmso":         331.2347884,
				"h2o":          331.1670301,
				"methanol":     331.2231923,
				"thf":          331.2383692,
				"toluene":      331.2108329,
			},
			"pbeh-3c": {
				"gas":          425.0726297,
				"acetone":      424.9009564,
				"chcl3":        424.8706079,
				"acetonitrile": 424.8831877,
				"ch2cl2":       424.8554965,
				"dmso":         424.9143792,
				"h2o":          424.8579037,
				"methanol":     424.8851226,
				"thf":          424.9146175,
				"toluene":      424.9330242,
			},
		},
	},
}

var siOrcaShieldings = shieldTable{
	"TMS": {
		"pbeh-3c": {
			"tpss": {
				"gas":          344.281,
				"acetone":      344.239,
				"chcl3":        344.311,
				"acetonitrile": 344.198,
				"ch2cl2":       344.231,
				"dmso":         344.292,
				"h2o":          344.228,
				"methanol":     344.291,
				"thf":          344.283,
				"toluene":      344.452,
			},
			"pbe0": {
				"gas":          332.181,
				"acetone":      332.067,
				"chcl3":        332.162,
				"acetonitrile": 332.033,
				"ch2cl2":       332.082,
				"dmso":         332.122,
				"h2o":          332.048,
				"methanol":     332.122,
				"thf":          332.134,
				"toluene":      332.298,
			},
			"pbeh-3c": {
				"gas":          425.385,
				"acetone":      425.52,
				"chcl3":        425.527,
				"acetonitrile": 425.511,
				"ch2cl2":       425.508,
				"dmso":         425.578,
				"h2o":          425.566,
				"methanol":     425.557,
				"thf":          425.54,
				"toluene":      425.556,
			},
		},
	},
}

var fTmShieldings = shieldTable{
	"CFCl3": {
		"pbeh-3c": {
			"tpss": {
				"gas":          163.5665883,
				"acetone":      165.9168679,
				"chcl3":        165.043061,
				"acetonitrile": 166.377831,
				"ch2cl2":       164.776383,
				"dmso":         166.1839641,
				"h2o":          166.880495,
				"methanol":     165.4364879,
				"thf":          165.7384153,
				"toluene":      165.7812123,
			},
			"pbe0": {
				"gas":          179.4820255,
				"acetone":      181.9743764,
				"chcl3":        181.1338758,
				"acetonitrile": 182.4438224,
				"ch2cl2":       180.8751895,
				"dmso":         182.2224636,
				"h2o":          182.9958356,
				"methanol":     181.5031528,
				"thf":          181.7669891,
				"toluene":      181.7963177,
			},
			"pbeh-3c": {
				"gas":          225.045234,
				"acetone":      226.6335916,
				"chcl3":        226.0133192,
				"acetonitrile": 226.9371636,
				"ch2cl2":       225.8300352,
				"dmso":         226.8061873,
				"h2o":          227.4000142,
				"methanol":     226.3012569,
				"thf":          226.5247654,
				"toluene":      226.555523,
			},
		},
		"b97-3c": {
			"tpss": {
				"gas":          150.4514566,
				"acetone":      151.5612999,
				"chcl3":        150.5819485,
				"acetonitrile": 151.9884593,
				"ch2cl2":       150.2953968,
				"dmso":         151.8818575,
				"h2o":          151.6179136,
				"methanol":     151.0439011,
				"thf":          151.4207377,
				"toluene":      151.4686522,
			},
			"pbe0": {
				"gas":          167.7783433,
				"acetone":      169.09491,
				"chcl3":        168.1354478,
				"acetonitrile": 169.5416871,
				"ch2cl2":       167.8558489,
				"dmso":         169.3950732,
				"h2o":          169.2178304,
				"methanol":     168.5860848,
				"thf":          168.9136991,
				"toluene":      168.9347931,
			},
			"pbeh-3c": {
				"gas":          213.6651892,
				"acetone":      214.1284506,
				"chcl3":        213.4293417,
				"acetonitrile": 214.4297108,
				"ch2cl2":       213.2298905,
				"dmso":         214.366451,
				"h2o":          214.1162368,
				"methanol":     213.76845,
				"thf":          214.0512078,
				"toluene":      214.0924969,
			},
		},
		"tpss": {
			"tpss": {
				"gas":          146.4091676,
				"acetone":      148.7113398,
				"chcl3":        147.7715256,
				"acetonitrile": 149.1854535,
				"ch2cl2":       147.4708159,
				"dmso":         148.9781692,
				"h2o":          148.8407317,
				"methanol":     148.1815132,
				"thf":          148.5140784,
				"toluene":      148.6001306,
			},
			"pbe0": {
				"gas":          163.4654205,
				"acetone":      165.9356023,
				"chcl3":        165.0269644,
				"acetonitrile": 166.4188044,
				"ch2cl2":       164.7336009,
				"dmso":         166.1830401,
				"h2o":          166.0858984,
				"methanol":     165.4145633,
				"thf":          165.7038144,
				"toluene":      165.7726604,
			},
			"pbeh-3c": {
				"gas":          209.8752809,
				"acetone":      211.4025693,
				"chcl3":        210.7286529,
				"acetonitrile": 211.7120494,
				"ch2cl2":       210.5166504,
				"dmso":         211.5990015,
				"h2o":          211.4250312,
				"methanol":     211.0321396,
				"thf":          211.2798891,
				"toluene":      211.3499046,
			},
		},
	},
}

var fOrcaShieldings = shieldTable{
	"CFCl3": {
		"pbeh-3c": {
			"tpss": {
				"gas":          166.028,
				"acetone":      167.858,
				"chcl3":        167.569,
				"acetonitrile": 167.92,
				"ch2cl2":       167.732,
				"dmso":         167.992,
				"h2o":          168.239,
				"methanol":     167.889,
				"thf":          167.737,
				"toluene":      167.278,
			},
			"pbe0": {
				"gas":          178.99,
				"acetone":      181.086,
				"chcl3":        180.741,
				"acetonitrile": 181.154,
				"ch2cl2":       180.939,
				"dmso":         181.224,
				"h2o":          181.464,
				"methanol":     181.123,
				"thf":          180.934,
				"toluene":      180.377,
			},
			"pbeh-3c": {
				"gas":          224.834,
				"acetone":      226.308,
				"chcl3":        226.076,
				"acetonitrile": 226.36,
				"ch2cl2":       226.207,
				"dmso":         226.424,
				"h2o":          226.639,
				"methanol":     226.333,
				"thf":          226.215,
				"toluene":      225.843,
			},
		},
	},
}

// lookup formats the reference shielding of ref in tab, "0" when the
// table has no entry for the selected functional/solvent combination
func (tab shieldTable) lookup(ref, optFunc, funcS, solvent string) (string, bool) {
	v, ok := tab[ref][optFunc][funcS][solvent]
	if !ok {
		return "0", false
	}
	return strconv.FormatFloat(v, 'f', 3, 64), true
}

// WriteAnmrrc writes the .anmrrc file consumed by the NMR spectrum
// simulation, holding the absolute reference shielding per active
// nucleus. It returns the element-to-shielding map it wrote.
func WriteAnmrrc(cwd string) (map[string]float64, error) {
	solvent := Conf.Str(Solvent)
	if solvent != "gas" {
		if Conf.Str(Prog) == "tm" && Conf.Str(Sm2) == "cosmo" {
			Warn("The geometry optimization of the reference molecule " +
				"was calculated with DCOSMO-RS instead of COSMO as " +
				"solvent model (sm2)!")
		} else if Conf.Str(Prog) == "orca" && Conf.Str(Sm2) == "cpcm" {
			Warn("The geometry optimization of the reference molecule " +
				"was calculated with SMD instead of CPCM as solvent " +
				"model (sm2)!")
		}
	}
	var (
		hTab, cTab, fTab, pTab, siTab shieldTable
		lsm, lbasisS                  string
	)
	switch Conf.Str(Prog4S) {
	case "orca":
		hTab, cTab, fTab = hOrcaShieldings, cOrcaShieldings, fOrcaShieldings
		pTab, siTab = pOrcaShieldings, siOrcaShieldings
		lsm, lbasisS = "SMD", "def2-TZVP"
		if Conf.Str(Sm4S) == "cpcm" {
			Warn("The reference shielding was calculated with SMD " +
				"instead of CPCM as solvent model (sm4s)!")
		}
	default:
		hTab, cTab, fTab = hTmShieldings, cTmShieldings, fTmShieldings
		pTab, siTab = pTmShieldings, siTmShieldings
		lsm, lbasisS = "DCOSMO-RS", "def2-TZVP"
		if Conf.Str(Sm4S) == "cosmo" {
			Warn("The reference shielding constant was calculated with " +
				"DCOSMORS instead of COSMO as solvent model (sm4s)!")
		}
	}
	if Conf.Str(FuncS) == "pbeh-3c" {
		lbasisS = "def2-mSVP"
	}
	if Conf.Str(BasisS) != "def2-TZVP" && Conf.Str(FuncS) != "pbeh-3c" {
		Warn("The reference shielding constant was calculated with the " +
			"basis def2-TZVP (basisS)!")
	}
	optFunc := Conf.Str(Func)
	if optFunc == "r2scan-3c" {
		Warn("The reference shielding constants are not available for " +
			"r2scan-3c and b97-3c is used instead!")
		optFunc = "b97-3c"
	}
	funcS := Conf.Str(FuncS)
	hs, hok := hTab.lookup(Conf.Str(HRef), optFunc, funcS, solvent)
	cs, cok := cTab.lookup(Conf.Str(CRef), optFunc, funcS, solvent)
	fs, fok := fTab.lookup(Conf.Str(FRef), optFunc, funcS, solvent)
	ps, pok := pTab.lookup(Conf.Str(PRef), optFunc, funcS, solvent)
	sis, siok := siTab.lookup(Conf.Str(SiRef), optFunc, funcS, solvent)
	if !(hok && cok && fok && pok && siok) {
		fmt.Println("ERROR! The reference absolute shielding constant " +
			"could not be found!\n You have to edit the file .anmrrc by hand!")
	}
	refs := map[string]float64{}
	for el, s := range map[string]string{
		"h": hs, "c": cs, "f": fs, "p": ps, "si": sis,
	} {
		v, _ := strconv.ParseFloat(s, 64)
		refs[el] = v
	}
	onoff := map[bool]string{true: "on", false: "off"}
	exch := map[bool]int{true: 1, false: 0}
	arc, err := os.Create(filepath.Join(cwd, ".anmrrc"))
	if err != nil {
		return refs, err
	}
	defer arc.Close()
	fmt.Fprint(arc, "7 8 XH acid atoms\n")
	if mf := Conf.Float(ResonanceFreq); !math.IsNaN(mf) {
		fmt.Fprintf(arc, "ENSO qm= %s mf= %v lw= 1.0  J= %s S= %s T= %6.2f \n",
			strings.ToUpper(Conf.Str(Prog4S)), mf,
			onoff[Conf.Bool(Couplings)], onoff[Conf.Bool(Shieldings)],
			Conf.Float(Temperature))
	} else {
		fmt.Fprintf(arc, "ENSO qm= %s lw= 1.2\n",
			strings.ToUpper(Conf.Str(Prog4S)))
	}
	length := 6
	for _, s := range []string{hs, cs, fs, ps, sis} {
		if len(s) > length {
			length = len(s)
		}
	}
	fmt.Fprintf(arc, "%s[%s] %s[%s]/%s//%s[%s]/%s\n",
		Conf.Str(HRef), solvent, funcS, lsm, lbasisS, optFunc, lsm,
		Conf.Str(Basis))
	fmt.Fprintf(arc, "1  %-*s    0.0    %d\n", length, hs, exch[Conf.Bool(HActive)])
	fmt.Fprintf(arc, "6  %-*s    0.0    %d\n", length, cs, exch[Conf.Bool(CActive)])
	fmt.Fprintf(arc, "9  %-*s    0.0    %d\n", length, fs, exch[Conf.Bool(FActive)])
	fmt.Fprintf(arc, "14 %-*s    0.0    %d\n", length, sis, exch[Conf.Bool(SiActive)])
	fmt.Fprintf(arc, "15 %-*s    0.0    %d\n", length, ps, exch[Conf.Bool(PActive)])
	return refs, nil
}
